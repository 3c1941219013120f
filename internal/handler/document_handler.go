package handler

import (
	"center-docs-server/internal/model"
	requestresponse "center-docs-server/internal/model/requestresponse"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/util"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService}
}

// CreateDocument godoc
// @Summary Crear un documento lógico
// @Description Da de alta un documento de un centro y departamento. La versión
// vigente arranca en 1 y el contenido se sube después como versiones.
// @Tags Documents
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateDocumentRequest true "Metadatos del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.DocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents [post]
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req requestresponse.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	document := &model.Document{
		UUID:           uuid.New().String(),
		Name:           req.Name,
		Type:           req.Type,
		CenterUUID:     req.CenterUUID,
		DepartmentUUID: req.DepartmentUUID,
	}

	if req.ExpirationDate != "" {
		expiration, err := time.Parse(time.RFC3339, req.ExpirationDate)
		if err != nil {
			util.HandleError(w, "la fecha de vencimiento debe ser RFC3339", http.StatusBadRequest)
			return
		}
		document.ExpirationDate = &expiration
	}

	created, err := h.DocumentService.CreateDocument(ctx, document)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.DocumentResponseFromModel(created))
}

// GetDocument godoc
// @Summary Consultar un documento
// @Tags Documents
// @Produce json
// @Param doc_id path string true "UUID del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DocumentResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/documents/{doc_id} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	document, err := h.DocumentService.GetDocument(r.Context(), chi.URLParam(r, "doc_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.DocumentResponseFromModel(document))
}
