package service

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var validRoles = map[string]bool{
	model.RoleUser:       true,
	model.RoleAdmin:      true,
	model.RoleSuperAdmin: true,
}

// UserService : alta de usuarios y autenticación. La identidad del actor que
// firma aprobaciones y auditoría sale siempre de los claims del token emitido
// aquí, nunca de valores enviados por el cliente.
type UserService struct {
	userRepository ports.UserRepository
	jwtService     *security.JWTService
	adminConfig    *config.AdminConfig
}

func NewUserService(userRepository ports.UserRepository, jwtService *security.JWTService, adminConfig *config.AdminConfig) *UserService {
	return &UserService{
		userRepository: userRepository,
		jwtService:     jwtService,
		adminConfig:    adminConfig,
	}
}

// Register : alta de usuario protegida por el token de administración
func (s *UserService) Register(ctx context.Context, adminToken string, name string, email string, password string, role string) (*model.User, error) {
	if s.adminConfig == nil || adminToken != s.adminConfig.AdminToken {
		return nil, apperr.Unauthorized("token de administración no válido")
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("el nombre es obligatorio")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.Validation("email no válido")
	}
	if role == "" {
		role = model.RoleUser
	}
	if !validRoles[role] {
		return nil, apperr.Validation("rol desconocido: %s", role)
	}
	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] no se pudo generar el hash del password: %w", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[UserService] database connection no encontrada en el context")
	}

	created, err := s.userRepository.CreateUser(ctx, db, user)
	if err != nil {
		return nil, fmt.Errorf("[UserService] error creando el usuario: %w", err)
	}

	return created, nil
}

// Login : valida las credenciales y emite un access token con uuid, nombre y rol
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return "", fmt.Errorf("[UserService] database connection no encontrada en el context")
	}

	user, err := s.userRepository.FindByEmail(ctx, db, email)
	if err != nil {
		return "", util.LogError("[UserService] credenciales no válidas", err)
	}

	if !user.Active {
		return "", fmt.Errorf("[UserService] el usuario está desactivado")
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return "", fmt.Errorf("[UserService] credenciales no válidas")
	}

	return s.jwtService.GenerateAccessToken(user.UUID, user.Name, user.Role)
}

// GetUser : devuelve un usuario por su UUID
func (s *UserService) GetUser(ctx context.Context, userUUID string) (*model.User, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[UserService] database connection no encontrada en el context")
	}

	return s.userRepository.FindByUUID(ctx, db, userUUID)
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return apperr.Validation("el password debe tener al menos 8 caracteres")
	}

	var upperCount, lowerCount, digitCount int
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upperCount++
		case unicode.IsLower(c):
			lowerCount++
		case unicode.IsDigit(c):
			digitCount++
		}
	}

	if upperCount == 0 || lowerCount == 0 {
		return apperr.Validation("el password debe combinar mayúsculas y minúsculas")
	}
	if digitCount == 0 {
		return apperr.Validation("el password debe incluir al menos un dígito")
	}

	return nil
}
