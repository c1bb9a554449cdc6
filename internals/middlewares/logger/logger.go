package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request dengan request id dari locals.
// Timezone mengikuti domain club (Argentina), bisa dioverride via env.
func LoggerMiddleware() fiber.Handler {
	tz := os.Getenv("LOG_TIMEZONE")
	if tz == "" {
		tz = "America/Argentina/Buenos_Aires"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[${time}] id=${locals:reqid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
