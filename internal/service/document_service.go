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
	"log"
	"strings"
)

// DocumentService : alta y lectura de documentos lógicos. El resto del CRUD
// de centros y departamentos vive fuera de este servicio.
type DocumentService struct {
	documentRepository ports.DocumentRepository
	auditRecorder      ports.AuditRecorder
}

func NewDocumentService(documentRepository ports.DocumentRepository, auditRecorder ports.AuditRecorder) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		auditRecorder:      auditRecorder,
	}
}

// CreateDocument : crea un documento lógico; la versión vigente arranca en 1
func (s *DocumentService) CreateDocument(ctx context.Context, document *model.Document) (*model.Document, error) {
	if strings.TrimSpace(document.Name) == "" || strings.TrimSpace(document.Type) == "" {
		return nil, apperr.Validation("nombre y tipo del documento son obligatorios")
	}
	if strings.TrimSpace(document.CenterUUID) == "" || strings.TrimSpace(document.DepartmentUUID) == "" {
		return nil, apperr.Validation("centro y departamento del documento son obligatorios")
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[DocumentService] database connection no encontrada en el context")
	}

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil || claims == nil {
		return nil, fmt.Errorf("[DocumentService] usuario no autenticado")
	}

	if err := s.documentRepository.Create(ctx, db, document); err != nil {
		return nil, util.LogError("[DocumentService] no se pudo guardar el documento", err)
	}

	if err := s.auditRecorder.Record(ctx, db, &model.AuditEntry{
		ActorName:  claims.Name,
		Action:     "document_created",
		Entity:     "document",
		EntityUUID: document.UUID,
		Detail:     fmt.Sprintf("documento %q (%s) del centro %s", document.Name, document.Type, document.CenterUUID),
	}); err != nil {
		log.Printf("[DocumentService] error de auditoría: %v", err)
	}

	log.Printf("[DocumentService] documento %q creado por %s", document.Name, claims.Name)

	return s.documentRepository.GetByUUID(ctx, db, document.UUID)
}

// GetDocument : devuelve un documento por su UUID
func (s *DocumentService) GetDocument(ctx context.Context, documentUUID string) (*model.Document, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[DocumentService] database connection no encontrada en el context")
	}

	return s.documentRepository.GetByUUID(ctx, db, documentUUID)
}
