package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/pkg/jwt"
	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

// Locals keys do escopo da requisição.
const (
	LocalStoreID = "store_id"
	LocalUserID  = "user_id"
	LocalRole    = "role"
)

// StoreScope resolve a loja da requisição: query store_id, senão o claim de um
// Bearer token válido, senão nenhuma (leituras sem filtro).
// Nunca rejeita: token inválido é ignorado e registrado em debug.
func StoreScope(jwtSecret string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c.Get("Authorization")); token != "" && jwtSecret != "" {
			claims, err := jwt.Parse(jwtSecret, token)
			if err != nil {
				if log != nil {
					log.Debug().Err(err).Str("path", c.Path()).Msg("token ignorado")
				}
			} else {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalRole, claims.Role)
				if claims.StoreID != "" {
					c.Locals(LocalStoreID, claims.StoreID)
				}
			}
		}
		if q := strings.TrimSpace(c.Query("store_id")); q != "" {
			c.Locals(LocalStoreID, q)
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetStoreID loja do escopo; "" quando nenhuma foi informada.
func GetStoreID(c *fiber.Ctx) string {
	return localString(c, LocalStoreID)
}

// GetUserID usuário do token, se houver.
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole papel do token, se houver.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// storeOrDefault loja do escopo ou def.
func storeOrDefault(c *fiber.Ctx, def string) string {
	if s := GetStoreID(c); s != "" {
		return s
	}
	return def
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
