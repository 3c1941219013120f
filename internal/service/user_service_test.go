package service_test

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"center-docs-server/internal/security"
	"center-docs-server/internal/service"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*service.UserService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	jwtService := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "clave-secreta-de-pruebas",
		AccessTokenTTL: "15m",
	})
	svc := service.NewUserService(userRepo, jwtService, &config.AdminConfig{AdminToken: "token-admin"})
	return svc, userRepo
}

func TestRegister_AllCases(t *testing.T) {
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	tests := []struct {
		name        string
		adminToken  string
		userName    string
		email       string
		password    string
		role        string
		setupMocks  func(userRepo *MockUserRepository)
		expectedErr error
	}{
		{
			name:       "Alta correcta de un admin",
			adminToken: "token-admin",
			userName:   "María López",
			email:      "maria.lopez@ejemplo.com",
			password:   "MiClave123",
			role:       model.RoleAdmin,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("CreateUser", ctx, mock.Anything, mock.Anything).
					Return(&model.User{UUID: "u1", Name: "María López", Role: model.RoleAdmin}, nil)
			},
		},
		{
			name:        "Token de administración incorrecto",
			adminToken:  "token-falso",
			userName:    "María López",
			email:       "maria.lopez@ejemplo.com",
			password:    "MiClave123",
			expectedErr: apperr.ErrUnauthorized,
		},
		{
			name:        "Email sin arroba",
			adminToken:  "token-admin",
			userName:    "María López",
			email:       "maria.lopez",
			password:    "MiClave123",
			expectedErr: apperr.ErrValidation,
		},
		{
			name:        "Rol desconocido",
			adminToken:  "token-admin",
			userName:    "María López",
			email:       "maria.lopez@ejemplo.com",
			password:    "MiClave123",
			role:        "jefe",
			expectedErr: apperr.ErrValidation,
		},
		{
			name:        "Password demasiado corto",
			adminToken:  "token-admin",
			userName:    "María López",
			email:       "maria.lopez@ejemplo.com",
			password:    "Abc1",
			expectedErr: apperr.ErrValidation,
		},
		{
			name:        "Password sin mayúsculas",
			adminToken:  "token-admin",
			userName:    "María López",
			email:       "maria.lopez@ejemplo.com",
			password:    "miclave123",
			expectedErr: apperr.ErrValidation,
		},
		{
			name:        "Password sin dígitos",
			adminToken:  "token-admin",
			userName:    "María López",
			email:       "maria.lopez@ejemplo.com",
			password:    "MiClaveSecreta",
			expectedErr: apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := newTestUserService()
			if tt.setupMocks != nil {
				tt.setupMocks(userRepo)
			}

			user, err := svc.Register(ctx, tt.adminToken, tt.userName, tt.email, tt.password, tt.role)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.RoleAdmin, user.Role)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestLogin_AllCases(t *testing.T) {
	ctx := context.WithValue(context.Background(), "db", &config.Database{})

	hash, err := security.HashPassword("MiClave123")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		setupMocks  func(userRepo *MockUserRepository)
		expectError bool
	}{
		{
			name:     "Credenciales correctas",
			password: "MiClave123",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", ctx, mock.Anything, "maria.lopez@ejemplo.com").
					Return(&model.User{UUID: "u1", Name: "María López", Role: model.RoleAdmin, PasswordHash: hash, Active: true}, nil)
			},
		},
		{
			name:     "Password incorrecto",
			password: "OtraClave456",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", ctx, mock.Anything, "maria.lopez@ejemplo.com").
					Return(&model.User{UUID: "u1", PasswordHash: hash, Active: true}, nil)
			},
			expectError: true,
		},
		{
			name:     "Usuario desactivado",
			password: "MiClave123",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", ctx, mock.Anything, "maria.lopez@ejemplo.com").
					Return(&model.User{UUID: "u1", PasswordHash: hash, Active: false}, nil)
			},
			expectError: true,
		},
		{
			name:     "Usuario inexistente",
			password: "MiClave123",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", ctx, mock.Anything, "maria.lopez@ejemplo.com").
					Return(nil, errors.New("no encontrado"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := newTestUserService()
			tt.setupMocks(userRepo)

			token, err := svc.Login(ctx, "maria.lopez@ejemplo.com", tt.password)

			if tt.expectError {
				require.Error(t, err)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}
