package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/auth"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// AuthHandler maneja signup, signin, product keys y el usuario actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario
// @Description  BUYER se registra libremente; REALTOR y ADMIN requieren productKey.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        userType  path  string             true  "BUYER, REALTOR o ADMIN"
// @Param        body      body  dto.SignupRequest  true  "name, phone, email, password, productKey"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /auth/signup/{userType} [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	role, ok := entity.ParseRole(c.Params("userType"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userType debe ser BUYER, REALTOR o ADMIN"})
	}
	var in dto.SignupRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	if role != entity.RoleBuyer && !h.uc.VerifyProductKey(in.Email, role, in.ProductKey) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "product key inválida"})
	}
	out, err := h.uc.Signup(c.UserContext(), in, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Signin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SigninRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.SigninRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Signin(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GenerateProductKey godoc
// @Summary      Generar product key
// @Description  Deriva la key que un REALTOR o ADMIN presenta en signup.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateProductKeyRequest  true  "email, userType"
// @Success      200   {object}  dto.ProductKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/key [post]
func (h *AuthHandler) GenerateProductKey(c *fiber.Ctx) error {
	var in dto.GenerateProductKeyRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	role, ok := entity.ParseRole(in.UserType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userType debe ser BUYER, REALTOR o ADMIN"})
	}
	key, err := h.uc.GenerateProductKey(in.Email, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductKeyResponse{ProductKey: key})
}

// Me godoc
// @Summary      Usuario actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token requerido"})
	}
	out := dto.MeResponse{Name: claims.Name, ID: claims.UserID}
	if claims.IssuedAt != nil {
		out.Iat = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.Exp = claims.ExpiresAt.Unix()
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Los tokens no se revocan en servidor; el cliente descarta el suyo.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.AuthResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(h.uc.Logout())
}
