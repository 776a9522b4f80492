package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
)

// referenceDate lee ?date=YYYY-MM-DD; ausente = nil (el caso de uso usa el día actual).
func referenceDate(c *fiber.Ctx) (*time.Time, error) {
	return dto.ParseOptionalDate(c.Query("date"))
}

// optionalInt lee un entero opcional del query string.
func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
}
