// Comando migrate aplica las migraciones embebidas con goose.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate status
//	go run ./cmd/migrate down-to 0
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

func main() {
	dsn := flag.String("dsn", "", "connection string (por defecto DATABASE_URL o DB_*)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "uso: migrate [-dsn url] <up|down|status|version|redo|reset|up-to N|down-to N>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	command := "up"
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	target := *dsn
	if target == "" {
		target = cfg.DB.ConnectionString()
	}

	if err := postgres.Migrate(context.Background(), target, log.Component("migrate"), command, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("goose")
	}
	log.Info().Str("command", command).Msg("goose ok")
}
