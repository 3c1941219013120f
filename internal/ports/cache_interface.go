package ports

import (
	"center-docs-server/internal/model"
	"context"
)

// CacheRepository : capa Redis con la versión vigente resuelta por documento
type CacheRepository interface {
	SetCurrentVersion(ctx context.Context, documentUUID string, version *model.DocumentVersion) error
	GetCurrentVersion(ctx context.Context, documentUUID string) (*model.DocumentVersion, error)
	InvalidateCurrentVersion(ctx context.Context, documentUUID string) error
}
