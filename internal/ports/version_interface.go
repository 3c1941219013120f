package ports

import (
	"center-docs-server/internal/model"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// VersionRepository : capa SQL de versiones de documento.
// Las decisiones (aprobar/rechazar) son updates condicionales sobre el estado
// pendiente; devuelven false si la fila ya había sido decidida.
type VersionRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, version *model.DocumentVersion) (*model.DocumentVersion, error)
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, versionUUID string) (*model.DocumentVersion, error)
	ListByDocument(ctx context.Context, exec sqlx.ExtContext, documentUUID string, showAll bool) ([]model.DocumentVersion, error)
	ListByStatus(ctx context.Context, exec sqlx.ExtContext, status string, departmentUUID string) ([]model.DocumentVersion, error)
	GetApprovedByNumber(ctx context.Context, exec sqlx.ExtContext, documentUUID string, version int) (*model.DocumentVersion, error)
	GetLatestApproved(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.DocumentVersion, error)
	GetLatest(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.DocumentVersion, error)
	MarkApproved(ctx context.Context, exec sqlx.ExtContext, versionUUID string, approver string, at time.Time) (bool, error)
	MarkRejected(ctx context.Context, exec sqlx.ExtContext, versionUUID string, reviewer string, reason string, at time.Time) (bool, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

// ApprovalService : motor de aprobación de versiones
type ApprovalService interface {
	CreateVersion(ctx context.Context, version *model.DocumentVersion) (*model.DocumentVersion, string, error)
	ApproveVersion(ctx context.Context, versionUUID string, approverName string) (*model.DocumentVersion, error)
	RejectVersion(ctx context.Context, versionUUID string, reviewerName string, reason string) (*model.DocumentVersion, error)
	ListPending(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error)
	ListApproved(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error)
	ListRejected(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error)
	ListVersions(ctx context.Context, documentUUID string, showAll bool) ([]model.DocumentVersion, error)
	GetCurrentVersion(ctx context.Context, documentUUID string) (*model.DocumentVersion, string, error)
	DownloadURL(ctx context.Context, versionUUID string) (string, error)
}
