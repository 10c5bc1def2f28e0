package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"app-portal-backend/models"
	apimodels "app-portal-backend/models/api"
)

// Операции управления формами и проверки доступны только администратору
func AdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		token := ctx.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)
		if role != string(models.PortalAdminRole) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
