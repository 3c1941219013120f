package ports

import (
	"center-docs-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	ListActiveAdmins(ctx context.Context, exec sqlx.ExtContext) ([]model.User, error)
}

type UserService interface {
	Register(ctx context.Context, adminToken string, name string, email string, password string, role string) (*model.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
	GetUser(ctx context.Context, uuid string) (*model.User, error)
}
