package dto

// SignupRequest entrada para registro. ProductKey solo se exige para roles distintos de BUYER.
type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required,phone"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=5,maxbytes=72"`
	ProductKey string `json:"productKey"`
}

// SigninRequest entrada para login.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GenerateProductKeyRequest entrada para generar una product key.
type GenerateProductKeyRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"userType" validate:"required"`
}

// ProductKeyResponse product key generada (hash bcrypt).
type ProductKeyResponse struct {
	ProductKey string `json:"productKey"`
}

// AuthData datos del usuario autenticado y su token.
type AuthData struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// AuthResponse sobre de respuesta de signup/signin/logout.
type AuthResponse struct {
	Code    int       `json:"code"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    *AuthData `json:"data,omitempty"`
}

// Principal usuario autenticado tal como lo deja el guard o el middleware de auth.
type Principal struct {
	ID   string
	Name string
	Role string
}

// MeResponse payload decodificado del token.
type MeResponse struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Iat  int64  `json:"iat"`
	Exp  int64  `json:"exp"`
}
