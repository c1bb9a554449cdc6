package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func tooMany(message string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"code":    fiber.StatusTooManyRequests,
			"status":  "error",
			"message": message,
		})
	}
}

// GlobalRateLimiter: batas umum per IP. Cukup longgar untuk secretaría
// yang membuka panel socios + deudas sekaligus.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("Demasiadas solicitudes. Intentá de nuevo en unos minutos."),
	})
}

// LoginRateLimiter: anti brute-force credenciales.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("Demasiados intentos de inicio de sesión. Esperá un momento e intentá de nuevo."),
	})
}

// RegisterRateLimiter: registrasi club baru jarang terjadi, jadi ketat.
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        3,
		Expiration: 10 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("Demasiados registros desde esta dirección. Intentá de nuevo más tarde."),
	})
}

// ForgotPasswordRateLimiter: tiap request memicu email keluar, jadi
// paling ketat dari semuanya.
func ForgotPasswordRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        2,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("Demasiadas solicitudes de restablecimiento. Intentá de nuevo en 15 minutos."),
	})
}
