package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/pkg/jwt"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
	LocalClaims   = "claims"
)

// UserFinder lookup de usuarios que necesita el guard.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// Guard autoriza rutas por rol: token Bearer válido, usuario existente y rol permitido.
type Guard struct {
	secret string
	users  UserFinder
	log    *logger.Logger
}

// NewGuard construye el guard con el secreto JWT y el lookup de usuarios.
func NewGuard(secret string, users UserFinder, log *logger.Logger) *Guard {
	return &Guard{secret: secret, users: users, log: log}
}

// RequireRoles deja pasar solo a usuarios cuyo rol esté en roles.
// Sin roles declarados niega siempre. Toda negación responde el mismo 403; la causa solo va al log.
func (g *Guard) RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToUpper(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if len(allowed) == 0 {
			return g.deny(c, "ruta sin roles declarados")
		}
		token, ok := bearerToken(c)
		if !ok {
			return g.deny(c, "falta token bearer")
		}
		claims, err := jwt.Parse(g.secret, token)
		if err != nil {
			return g.deny(c, err.Error())
		}
		user, err := g.users.FindByID(c.UserContext(), claims.UserID)
		if err != nil {
			return g.deny(c, "lookup de usuario: "+err.Error())
		}
		if user == nil {
			return g.deny(c, "usuario inexistente")
		}
		if _, ok := allowed[user.Role]; !ok {
			return g.deny(c, "rol "+user.Role+" no permitido")
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserName, user.Name)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

func (g *Guard) deny(c *fiber.Ctx, reason string) error {
	g.log.Debug().Str("path", c.Path()).Str("reason", reason).Msg("guard: acceso denegado")
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
}

// AuthMiddleware decodifica el Bearer Token si existe y es válido; nunca rechaza la petición.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwt.Parse(jwtSecret, token); err == nil {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalUserName, claims.Name)
				c.Locals(LocalClaims, claims)
			}
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID devuelve el UserID del contexto (después del guard o del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserName devuelve el nombre del usuario autenticado.
func GetUserName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserName).(string)
	return s
}

// GetRole devuelve el rol cargado por el guard.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetClaims devuelve los claims del token, o nil si no hay token válido.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

// GetPrincipal usuario autenticado tal como lo dejó el guard.
func GetPrincipal(c *fiber.Ctx) dto.Principal {
	return dto.Principal{ID: GetUserID(c), Name: GetUserName(c), Role: GetRole(c)}
}
