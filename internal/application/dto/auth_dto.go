package dto

// RegisterRequest body para POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest body para POST /api/login.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login: solo el nombre para mostrar.
type LoginResponse struct {
	Name string `json:"name"`
}

// RegisterResponse salida del registro (cuerpo vacío).
type RegisterResponse struct{}
