package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// errInvalidBody el cuerpo no es JSON válido para el DTO.
var errInvalidBody = errors.New("cuerpo inválido")

var validate = newValidator()

// newValidator reglas de los tags `validate` de los DTO; los mensajes usan el nombre JSON del campo.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
	})
	_ = v.RegisterValidation("movement_type", func(fl validator.FieldLevel) bool {
		return entity.MovementType(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
	})
	return v
}

// bindBody parsea el JSON del cuerpo en out y aplica sus reglas de validación.
func bindBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "min", "max":
		return fmt.Sprintf("%s no cumple %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "datetime":
		return fe.Field() + " debe tener formato YYYY-MM-DD"
	case "order_status":
		return fe.Field() + " debe ser PENDING, APPROVED, SHIPPED, RECEIVED o CANCELLED"
	case "movement_type":
		return fe.Field() + " debe ser D o C"
	default:
		return fe.Field() + " inválido"
	}
}
