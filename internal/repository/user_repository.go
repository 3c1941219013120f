package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/model"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : guarda un usuario nuevo
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, name, email, password_hash, role, active)
	VALUES ($1, $2, $3, $4, $5, true)
	RETURNING uuid, name, email, password_hash, role, active, created_at
	`

	createdUser := &model.User{}
	err := exec.QueryRowxContext(ctx, query, user.UUID, user.Name, user.Email, user.PasswordHash, user.Role).
		StructScan(createdUser)
	if err != nil {
		return nil, apperr.Store("[UserRepo] error insertando el usuario en la BD", err)
	}

	return createdUser, nil
}

// FindByUUID : busca un usuario por UUID
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, role, active, created_at FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("usuario %s no existe", uuid)
	} else if err != nil {
		return nil, apperr.Store("[UserRepo] no se pudo buscar el usuario", err)
	}
	return &user, nil
}

// FindByEmail : busca un usuario por email
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, role, active, created_at FROM users WHERE email = $1`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("usuario con email %s no existe", email)
	} else if err != nil {
		return nil, apperr.Store("[UserRepo] no se pudo buscar el usuario por email", err)
	}
	return &user, nil
}

// ListActiveAdmins : destinatarios de los avisos de vencimiento
// (usuarios activos con rol admin o super_admin)
func (r *UserRepository) ListActiveAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error) {
	query := `
		SELECT uuid, name, email, password_hash, role, active, created_at
		FROM users
		WHERE active = true AND role IN ('admin', 'super_admin')
		ORDER BY created_at ASC
	`

	users := []model.User{}
	if err := sqlx.SelectContext(ctx, exec, &users, query); err != nil {
		return nil, apperr.Store("[UserRepo] no se pudo listar administradores activos", err)
	}
	return users, nil
}
