package service

import (
	"center-docs-server/config"
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/metrics"
	"center-docs-server/internal/model"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Longitud mínima de los motivos de cambio y de rechazo
const minReasonLength = 5

// ApprovalService : motor de aprobación de versiones. Media la transición
// pending→approved/rejected y, al aprobar, promueve el puntero de versión
// vigente del documento padre dentro de la misma transacción.
type ApprovalService struct {
	versionRepository  ports.VersionRepository
	documentRepository ports.DocumentRepository
	cacheRepository    ports.CacheRepository
	auditRecorder      ports.AuditRecorder
	storageInterface   ports.S3Storage
	ttl                time.Duration
}

func NewApprovalService(
	versionRepository ports.VersionRepository,
	documentRepository ports.DocumentRepository,
	cacheRepository ports.CacheRepository,
	auditRecorder ports.AuditRecorder,
	storageInterface ports.S3Storage,
	ttl time.Duration,
) *ApprovalService {
	return &ApprovalService{
		versionRepository:  versionRepository,
		documentRepository: documentRepository,
		cacheRepository:    cacheRepository,
		auditRecorder:      auditRecorder,
		storageInterface:   storageInterface,
		ttl:                ttl,
	}
}

// CreateVersion : crea una versión pendiente. El número lo asigna el
// repositorio como max+1; crear no toca la versión vigente del documento.
// Devuelve la versión creada y, si trae archivo, el pre-signed PUT URL.
func (s *ApprovalService) CreateVersion(ctx context.Context, version *model.DocumentVersion) (*model.DocumentVersion, string, error) {
	if len(strings.TrimSpace(version.ChangeReason)) < minReasonLength {
		return nil, "", apperr.Validation("el motivo del cambio debe tener al menos %d caracteres", minReasonLength)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, "", fmt.Errorf("[ApprovalService] database connection no encontrada en el context")
	}

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil || claims == nil {
		return nil, "", fmt.Errorf("[ApprovalService] usuario no autenticado")
	}

	exists, err := s.documentRepository.Exists(ctx, db, version.DocumentUUID)
	if err != nil {
		return nil, "", util.LogError("[ApprovalService] error comprobando el documento padre", err)
	}
	if !exists {
		return nil, "", apperr.NotFound("documento %s no existe", version.DocumentUUID)
	}

	var putURL string
	if version.StoragePath != nil {
		putURL, err = s.storageInterface.GeneratePresignedPutURL(ctx, *version.StoragePath, s.ttl)
		if err != nil {
			return nil, "", util.LogError("[ApprovalService] no se pudo generar el pre-signed PUT URL", err)
		}
	}

	created, err := s.versionRepository.Create(ctx, db, version)
	if err != nil {
		return nil, "", util.LogError("[ApprovalService] no se pudo guardar la versión", err)
	}

	if err := s.auditRecorder.Record(ctx, db, &model.AuditEntry{
		ActorName:  claims.Name,
		Action:     "version_created",
		Entity:     "document_version",
		EntityUUID: created.UUID,
		Detail:     fmt.Sprintf("versión %d del documento %s", created.Version, created.DocumentUUID),
	}); err != nil {
		log.Printf("[ApprovalService] error de auditoría: %v", err)
	}

	// Una versión nueva puede cambiar el resultado del fallback cuando el
	// documento todavía no tiene nada aprobado.
	if err := s.cacheRepository.InvalidateCurrentVersion(ctx, created.DocumentUUID); err != nil {
		log.Printf("[ApprovalService] error invalidando el caché: %v", err)
	}

	log.Printf("[ApprovalService] versión %d del documento %s creada por %s",
		created.Version, created.DocumentUUID, claims.Name)

	return created, putURL, nil
}

// ApproveVersion : transición pending→approved y promoción del puntero del
// documento padre, ambas dentro de una transacción. La aprobación de una
// versión ya decidida falla con estado inválido.
func (s *ApprovalService) ApproveVersion(ctx context.Context, versionUUID string, approverName string) (*model.DocumentVersion, error) {
	exec, rollback, commit, err := s.versionRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo iniciar la transacción", err)
	}
	defer rollback()

	version, err := s.versionRepository.GetByUUID(ctx, exec, versionUUID)
	if err != nil {
		return nil, err
	}
	if version.ApprovalStatus != model.StatusPending {
		return nil, apperr.InvalidState("la versión %s ya fue decidida (%s)", versionUUID, version.ApprovalStatus)
	}

	now := time.Now()
	ok, err := s.versionRepository.MarkApproved(ctx, exec, versionUUID, approverName, now)
	if err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo aprobar la versión", err)
	}
	if !ok {
		// otra aprobación concurrente ganó la carrera
		return nil, apperr.InvalidState("la versión %s ya fue decidida", versionUUID)
	}

	if err := s.documentRepository.AdvanceCurrentVersion(ctx, exec, version.DocumentUUID, version.Version); err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo promover la versión vigente", err)
	}

	if err := s.auditRecorder.Record(ctx, exec, &model.AuditEntry{
		ActorName:  approverName,
		Action:     "version_approved",
		Entity:     "document_version",
		EntityUUID: versionUUID,
		Detail:     fmt.Sprintf("versión %d del documento %s aprobada", version.Version, version.DocumentUUID),
	}); err != nil {
		return nil, util.LogError("[ApprovalService] error de auditoría", err)
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo confirmar la transacción", err)
	}

	if err := s.cacheRepository.InvalidateCurrentVersion(ctx, version.DocumentUUID); err != nil {
		log.Printf("[ApprovalService] error invalidando el caché: %v", err)
	}
	metrics.VersionDecisions.WithLabelValues("approved").Inc()

	version.ApprovalStatus = model.StatusApproved
	version.ApprovedBy = &approverName
	version.ApprovedAt = &now

	log.Printf("[ApprovalService] versión %d del documento %s aprobada por %s",
		version.Version, version.DocumentUUID, approverName)

	return version, nil
}

// RejectVersion : transición pending→rejected; exige un motivo con un mínimo
// de caracteres y nunca toca la versión vigente del documento.
func (s *ApprovalService) RejectVersion(ctx context.Context, versionUUID string, reviewerName string, reason string) (*model.DocumentVersion, error) {
	if len(strings.TrimSpace(reason)) < minReasonLength {
		return nil, apperr.Validation("el motivo del rechazo debe tener al menos %d caracteres", minReasonLength)
	}

	exec, rollback, commit, err := s.versionRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo iniciar la transacción", err)
	}
	defer rollback()

	version, err := s.versionRepository.GetByUUID(ctx, exec, versionUUID)
	if err != nil {
		return nil, err
	}
	if version.ApprovalStatus != model.StatusPending {
		return nil, apperr.InvalidState("la versión %s ya fue decidida (%s)", versionUUID, version.ApprovalStatus)
	}

	now := time.Now()
	ok, err := s.versionRepository.MarkRejected(ctx, exec, versionUUID, reviewerName, reason, now)
	if err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo rechazar la versión", err)
	}
	if !ok {
		return nil, apperr.InvalidState("la versión %s ya fue decidida", versionUUID)
	}

	if err := s.auditRecorder.Record(ctx, exec, &model.AuditEntry{
		ActorName:  reviewerName,
		Action:     "version_rejected",
		Entity:     "document_version",
		EntityUUID: versionUUID,
		Detail:     fmt.Sprintf("versión %d del documento %s rechazada: %s", version.Version, version.DocumentUUID, reason),
	}); err != nil {
		return nil, util.LogError("[ApprovalService] error de auditoría", err)
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[ApprovalService] no se pudo confirmar la transacción", err)
	}

	if err := s.cacheRepository.InvalidateCurrentVersion(ctx, version.DocumentUUID); err != nil {
		log.Printf("[ApprovalService] error invalidando el caché: %v", err)
	}
	metrics.VersionDecisions.WithLabelValues("rejected").Inc()

	version.ApprovalStatus = model.StatusRejected
	version.ApprovedBy = &reviewerName
	version.ApprovedAt = &now
	version.RejectionReason = &reason

	log.Printf("[ApprovalService] versión %d del documento %s rechazada por %s",
		version.Version, version.DocumentUUID, reviewerName)

	return version, nil
}

// ListPending : versiones pendientes, opcionalmente por departamento
func (s *ApprovalService) ListPending(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error) {
	return s.listByStatus(ctx, model.StatusPending, departmentUUID)
}

// ListApproved : versiones aprobadas, opcionalmente por departamento
func (s *ApprovalService) ListApproved(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error) {
	return s.listByStatus(ctx, model.StatusApproved, departmentUUID)
}

// ListRejected : versiones rechazadas, opcionalmente por departamento
func (s *ApprovalService) ListRejected(ctx context.Context, departmentUUID string) ([]model.DocumentVersion, error) {
	return s.listByStatus(ctx, model.StatusRejected, departmentUUID)
}

func (s *ApprovalService) listByStatus(ctx context.Context, status string, departmentUUID string) ([]model.DocumentVersion, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[ApprovalService] database connection no encontrada en el context")
	}
	return s.versionRepository.ListByStatus(ctx, db, status, departmentUUID)
}

// ListVersions : versiones de un documento; por defecto solo aprobadas
func (s *ApprovalService) ListVersions(ctx context.Context, documentUUID string, showAll bool) ([]model.DocumentVersion, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[ApprovalService] database connection no encontrada en el context")
	}

	exists, err := s.documentRepository.Exists(ctx, db, documentUUID)
	if err != nil {
		return nil, util.LogError("[ApprovalService] error comprobando el documento", err)
	}
	if !exists {
		return nil, apperr.NotFound("documento %s no existe", documentUUID)
	}

	return s.versionRepository.ListByDocument(ctx, db, documentUUID, showAll)
}

// GetCurrentVersion : resuelve la versión vigente de un documento.
// Política de resolución, en orden: la versión cuyo número coincide con el
// puntero del documento y está aprobada; si no, la aprobada más reciente;
// si no, la última versión subida sin importar su estado.
func (s *ApprovalService) GetCurrentVersion(ctx context.Context, documentUUID string) (*model.DocumentVersion, string, error) {
	cached, err := s.cacheRepository.GetCurrentVersion(ctx, documentUUID)
	if err != nil {
		log.Printf("[ApprovalService] error de caché: %v", err)
	}
	if cached != nil {
		log.Printf("[ApprovalService] versión vigente del documento %s servida desde Redis", documentUUID)
		getURL, err := s.presignedGetURL(ctx, cached)
		if err != nil {
			return nil, "", err
		}
		return cached, getURL, nil
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, "", fmt.Errorf("[ApprovalService] database connection no encontrada en el context")
	}

	document, err := s.documentRepository.GetByUUID(ctx, db, documentUUID)
	if err != nil {
		return nil, "", err
	}

	version, err := s.versionRepository.GetApprovedByNumber(ctx, db, documentUUID, document.CurrentVersion)
	if err != nil {
		return nil, "", util.LogError("[ApprovalService] error resolviendo la versión vigente", err)
	}
	if version == nil {
		version, err = s.versionRepository.GetLatestApproved(ctx, db, documentUUID)
		if err != nil {
			return nil, "", util.LogError("[ApprovalService] error resolviendo la versión vigente", err)
		}
	}
	if version == nil {
		version, err = s.versionRepository.GetLatest(ctx, db, documentUUID)
		if err != nil {
			return nil, "", util.LogError("[ApprovalService] error resolviendo la versión vigente", err)
		}
	}
	if version == nil {
		return nil, "", apperr.NotFound("el documento %s no tiene versiones", documentUUID)
	}

	if err := s.cacheRepository.SetCurrentVersion(ctx, documentUUID, version); err != nil {
		log.Printf("[ApprovalService] error cacheando la versión vigente: %v", err)
	}

	getURL, err := s.presignedGetURL(ctx, version)
	if err != nil {
		return nil, "", err
	}
	return version, getURL, nil
}

// DownloadURL : pre-signed GET URL del archivo de una versión
func (s *ApprovalService) DownloadURL(ctx context.Context, versionUUID string) (string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return "", fmt.Errorf("[ApprovalService] database connection no encontrada en el context")
	}

	version, err := s.versionRepository.GetByUUID(ctx, db, versionUUID)
	if err != nil {
		return "", err
	}
	if version.StoragePath == nil {
		return "", apperr.Validation("la versión %s no tiene archivo adjunto", versionUUID)
	}

	return s.storageInterface.GeneratePresignedGetURL(ctx, *version.StoragePath, s.ttl)
}

func (s *ApprovalService) presignedGetURL(ctx context.Context, version *model.DocumentVersion) (string, error) {
	if version.StoragePath == nil {
		return "", nil
	}

	getURL, err := s.storageInterface.GeneratePresignedGetURL(ctx, *version.StoragePath, s.ttl)
	if err != nil {
		return "", util.LogError("[ApprovalService] no se pudo generar el pre-signed GET URL", err)
	}
	return getURL, nil
}
