package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
	"github.com/jhoicas/Inmobiliaria-api/pkg/jwt"
	"github.com/jhoicas/Inmobiliaria-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TTL duración de los tokens emitidos.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpMinutes) * time.Minute
}

// AuthUseCase casos de uso de autenticación: signup, signin y product keys.
type AuthUseCase struct {
	userRepo         repository.UserRepository
	jwtCfg           JWTConfig
	productKeySecret string
	// hash de referencia para igualar el coste de signin cuando el email no existe
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, productKeySecret string) (*AuthUseCase, error) {
	dummy, err := password.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("auth: hash de referencia: %w", err)
	}
	return &AuthUseCase{
		userRepo:         userRepo,
		jwtCfg:           jwtCfg,
		productKeySecret: productKeySecret,
		dummyHash:        dummy,
	}, nil
}

// Signup crea el usuario con el rol indicado y emite su token (registrarse implica iniciar sesión).
// Devuelve ErrEmailAlreadyExists si el email ya está registrado; en ese caso no se escribe nada.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest, role string) (*dto.AuthResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("signup: buscar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Code:    http.StatusCreated,
		Status:  "success",
		Message: "Signup successful",
		Data:    &dto.AuthData{UserID: user.ID, Name: user.Name, Role: user.Role, Token: token},
	}, nil
}

// Signin verifica email/password y emite el token.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Signin(ctx context.Context, in dto.SigninRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("signin: buscar email: %w", err)
	}
	if user == nil {
		_ = password.Verify(uc.dummyHash, in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if err := password.Verify(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Code:    http.StatusOK,
		Status:  "success",
		Message: "Signin successful",
		Data:    &dto.AuthData{UserID: user.ID, Name: user.Name, Role: user.Role, Token: token},
	}, nil
}

// GenerateProductKey deriva la product key de un email y rol: bcrypt(sha256(email-rol-secreto)).
// Un tercero privilegiado la entrega al futuro realtor/admin, que la presenta en signup.
func (uc *AuthUseCase) GenerateProductKey(email, role string) (string, error) {
	return password.Hash(uc.productKeySeed(email, role))
}

// VerifyProductKey re-deriva la semilla y la compara con la key presentada.
func (uc *AuthUseCase) VerifyProductKey(email, role, key string) bool {
	if key == "" {
		return false
	}
	return password.Verify(key, uc.productKeySeed(email, role)) == nil
}

// Logout no invalida nada en servidor: los tokens son stateless.
func (uc *AuthUseCase) Logout() *dto.AuthResponse {
	return &dto.AuthResponse{
		Code:    http.StatusOK,
		Status:  "success",
		Message: "Logout successful",
	}
}

// ParseToken verifica un token emitido por este servicio.
func (uc *AuthUseCase) ParseToken(token string) (*jwt.Claims, error) {
	return jwt.Parse(uc.jwtCfg.Secret, token)
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Name, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.TTL())
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}
	return token, nil
}

// la semilla se resume con SHA-256: bcrypt rechaza entradas de más de 72 bytes
func (uc *AuthUseCase) productKeySeed(email, role string) string {
	seed := fmt.Sprintf("%s-%s-%s", normalizeEmail(email), strings.ToLower(role), uc.productKeySecret)
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
