// Comando token emite un JWT firmado con JWT_SECRET para operar la API
// (no hay registro de usuarios en este servicio).
//
//	go run ./cmd/token -user 7f1c... -role admin
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/jwt"
)

func main() {
	user := flag.String("user", "", "ID del usuario (vacío = UUID nuevo)")
	role := flag.String("role", "compras", "rol: admin, compras, bodega, contabilidad")
	ttl := flag.Duration("ttl", 0, "vigencia del token (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado")
		os.Exit(1)
	}

	userID := *user
	if userID == "" {
		userID = uuid.New().String()
	}
	validity := *ttl
	if validity == 0 {
		validity = time.Duration(cfg.JWT.Expiration) * time.Minute
	}

	token, err := jwt.Generate(cfg.JWT.Secret, userID, *role, cfg.JWT.Issuer, validity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
