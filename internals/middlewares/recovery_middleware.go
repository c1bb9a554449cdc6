package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic handler dan mengubahnya jadi 500.
// Stack trace masuk log bersama request id supaya bisa dicocokkan
// dengan baris [REQ]-nya.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqid, _ := c.Locals("reqid").(string)
			log.Printf("[PANIC] id=%s %s %s: %v", reqid, c.Method(), c.OriginalURL(), e)
		},
	})
}
