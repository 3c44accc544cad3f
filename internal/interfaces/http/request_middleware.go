package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/facturacion/pkg/logger"
)

// LocalRequestID key de c.Locals con el id de la petición.
const LocalRequestID = "request_id"

// HeaderRequestID cabecera de entrada/salida del id de petición.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un id a cada petición (reutiliza X-Request-ID si viene) y
// registra método, ruta, status y latencia. Nunca registra el cuerpo: lleva contraseñas.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}

// GetRequestID devuelve el id de la petición (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
