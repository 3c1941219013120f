package ports

import (
	"center-docs-server/internal/model"
	"context"
	"github.com/jmoiron/sqlx"
)

// DocumentRepository : capa SQL de documentos
type DocumentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error)
	Exists(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (bool, error)
	ListExpiringWithin(ctx context.Context, exec sqlx.ExtContext, days int) ([]model.Document, error)
	ListExpiredPending(ctx context.Context, exec sqlx.ExtContext) ([]model.Document, error)
	SetReminderFlag(ctx context.Context, exec sqlx.ExtContext, documentUUID string, flag string) error
	AdvanceCurrentVersion(ctx context.Context, exec sqlx.ExtContext, documentUUID string, version int) error
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type DocumentService interface {
	CreateDocument(ctx context.Context, document *model.Document) (*model.Document, error)
	GetDocument(ctx context.Context, documentUUID string) (*model.Document, error)
}
