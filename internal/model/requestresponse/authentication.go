package requestresponse

// LoginRequest : credenciales de acceso
type LoginRequest struct {
	Email    string `json:"email" example:"maria.lopez@ejemplo.com"`
	Password string `json:"password" example:"MiClave123!"`
}

// RegisterRequest : alta de usuario con token de administración
type RegisterRequest struct {
	AdminToken string `json:"admin_token" example:"token-secreto"`
	Name       string `json:"name" example:"María López"`
	Email      string `json:"email" example:"maria.lopez@ejemplo.com"`
	Password   string `json:"password" example:"MiClave123!"`
	Role       string `json:"role" example:"admin"`
}

// TokenResponse : access token emitido tras autenticarse
type TokenResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// MeResponse : identidad derivada de la sesión actual
type MeResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Role string `json:"role" example:"admin"`
}
