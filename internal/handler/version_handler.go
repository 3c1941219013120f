package handler

import (
	"center-docs-server/internal/model"
	requestresponse "center-docs-server/internal/model/requestresponse"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VersionHandler struct {
	ports.ApprovalService
}

func NewVersionHandler(approvalService ports.ApprovalService) *VersionHandler {
	return &VersionHandler{approvalService}
}

// CreateVersion godoc
// @Summary Crear una versión nueva de un documento
// @Description Crea una versión pendiente de aprobación. Acepta JSON con los
// metadatos del archivo o multipart/form-data con el archivo y el motivo del
// cambio. El número de versión lo asigna el servidor.
// @Tags Versions
// @Accept json
// @Produce json
// @Param doc_id path string true "UUID del documento"
// @Param body body requestresponse.CreateVersionRequest true "Metadatos de la versión"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CreateVersionResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Motivo del cambio demasiado corto"
// @Failure 404 {object} requestresponse.ErrorResponse "Documento inexistente"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents/{doc_id}/versions [post]
func (h *VersionHandler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docUUID := chi.URLParam(r, "doc_id")
	if docUUID == "" {
		util.HandleError(w, "el UUID del documento es obligatorio", http.StatusBadRequest)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.createVersionMultipart(ctx, w, r, docUUID)
		return
	}

	var req requestresponse.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	version := &model.DocumentVersion{
		UUID:         uuid.New().String(),
		DocumentUUID: docUUID,
		ChangeReason: req.ChangeReason,
	}
	if req.FileName != "" {
		mimeType := req.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		storagePath := versionStoragePath(docUUID, req.FileName)
		version.FileName = &req.FileName
		version.SizeBytes = &req.SizeBytes
		version.MimeType = &mimeType
		version.StoragePath = &storagePath
	}

	created, putURL, err := h.ApprovalService.CreateVersion(ctx, version)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.CreateVersionResponse{
		Version: requestresponse.VersionResponseFromModel(created),
		PutURL:  putURL,
	})
}

// createVersionMultipart : variante con el archivo en el propio request; el
// servidor lo sube en segundo plano al pre-signed PUT URL
func (h *VersionHandler) createVersionMultipart(ctx context.Context, w http.ResponseWriter, r *http.Request, docUUID string) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "archivo no encontrado en el request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "error leyendo el archivo", http.StatusInternalServerError)
		return
	}

	size := int64(len(fileBytes))
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	storagePath := versionStoragePath(docUUID, header.Filename)

	version := &model.DocumentVersion{
		UUID:         uuid.New().String(),
		DocumentUUID: docUUID,
		FileName:     &header.Filename,
		SizeBytes:    &size,
		MimeType:     &mimeType,
		StoragePath:  &storagePath,
		ChangeReason: r.FormValue("change_reason"),
	}

	created, putURL, err := h.ApprovalService.CreateVersion(ctx, version)
	if err != nil {
		respondError(w, err)
		return
	}

	tmpFile, err := saveTempFile(fileBytes, header.Filename)
	if err != nil {
		util.HandleError(w, "error guardando el archivo", http.StatusInternalServerError)
		return
	}

	uploader := util.NewS3Uploader()
	uploader.UploadFileAsync(putURL, tmpFile)
	go h.monitorUpload(created.UUID, uploader)

	writeJSON(w, http.StatusCreated, requestresponse.CreateVersionResponse{
		Version: requestresponse.VersionResponseFromModel(created),
	})
}

func (h *VersionHandler) monitorUpload(versionUUID string, uploader *util.S3Uploader) {
	for {
		select {
		case err, ok := <-uploader.Errors():
			if ok == false {
				return
			}
			log.Printf("[VersionHandler/MonitorUpload] error subiendo el archivo de la versión %s: %v", versionUUID, err)

		case progress, ok := <-uploader.Progress():
			if ok == false {
				return
			}
			if progress == -1 {
				log.Printf("[VersionHandler/MonitorUpload] archivo de la versión %s subido correctamente", versionUUID)
			}

		case <-time.After(30 * time.Minute):
			log.Printf("[VersionHandler/MonitorUpload] timeout subiendo el archivo de la versión %s", versionUUID)
			return
		}
	}
}

// ListVersions godoc
// @Summary Versiones de un documento
// @Description Por defecto devuelve solo las aprobadas; showAll=true incluye todos los estados.
// @Tags Versions
// @Produce json
// @Param doc_id path string true "UUID del documento"
// @Param showAll query bool false "Incluir pendientes y rechazadas"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListVersionsResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/documents/{doc_id}/versions [get]
func (h *VersionHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	docUUID := chi.URLParam(r, "doc_id")
	showAll, _ := strconv.ParseBool(r.URL.Query().Get("showAll"))

	versions, err := h.ApprovalService.ListVersions(r.Context(), docUUID, showAll)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listVersionsResponse(versions))
}

// GetCurrentVersion godoc
// @Summary Versión vigente de un documento
// @Description Resuelve la versión vigente con la política de fallback: puntero
// aprobado, luego la aprobada más reciente, luego la última versión subida.
// @Tags Versions
// @Produce json
// @Param doc_id path string true "UUID del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentVersionResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Documento sin versiones"
// @Router /api/documents/{doc_id}/current-version [get]
func (h *VersionHandler) GetCurrentVersion(w http.ResponseWriter, r *http.Request) {
	docUUID := chi.URLParam(r, "doc_id")

	version, getURL, err := h.ApprovalService.GetCurrentVersion(r.Context(), docUUID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.CurrentVersionResponse{
		Version: requestresponse.VersionResponseFromModel(version),
		GetURL:  getURL,
	})
}

// ListPendingApprovals godoc
// @Summary Versiones pendientes de aprobación
// @Tags Approvals
// @Produce json
// @Param departmentId query string false "Acotar al departamento dueño del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListVersionsResponse
// @Router /api/pending-approvals [get]
func (h *VersionHandler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	versions, err := h.ApprovalService.ListPending(r.Context(), r.URL.Query().Get("departmentId"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listVersionsResponse(versions))
}

// ListApprovedVersions godoc
// @Summary Versiones aprobadas
// @Tags Approvals
// @Produce json
// @Param departmentId query string false "Acotar al departamento dueño del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListVersionsResponse
// @Router /api/approved-versions [get]
func (h *VersionHandler) ListApprovedVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.ApprovalService.ListApproved(r.Context(), r.URL.Query().Get("departmentId"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listVersionsResponse(versions))
}

// ListRejectedVersions godoc
// @Summary Versiones rechazadas
// @Tags Approvals
// @Produce json
// @Param departmentId query string false "Acotar al departamento dueño del documento"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListVersionsResponse
// @Router /api/rejected-versions [get]
func (h *VersionHandler) ListRejectedVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.ApprovalService.ListRejected(r.Context(), r.URL.Query().Get("departmentId"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listVersionsResponse(versions))
}

// ApproveVersion godoc
// @Summary Aprobar una versión pendiente
// @Description Aprueba la versión y promueve el puntero de versión vigente del
// documento padre. La identidad del aprobador sale de la sesión.
// @Tags Approvals
// @Produce json
// @Param version_id path string true "UUID de la versión"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.VersionResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "La versión ya fue decidida"
// @Router /api/versions/{version_id}/approve [post]
func (h *VersionHandler) ApproveVersion(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	version, err := h.ApprovalService.ApproveVersion(r.Context(), chi.URLParam(r, "version_id"), claims.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.VersionResponseFromModel(version))
}

// RejectVersion godoc
// @Summary Rechazar una versión pendiente
// @Description Rechaza la versión con un motivo de al menos 5 caracteres. No
// modifica la versión vigente del documento.
// @Tags Approvals
// @Accept json
// @Produce json
// @Param version_id path string true "UUID de la versión"
// @Param body body requestresponse.RejectVersionRequest true "Motivo del rechazo"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.VersionResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Motivo demasiado corto"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "La versión ya fue decidida"
// @Router /api/versions/{version_id}/reject [post]
func (h *VersionHandler) RejectVersion(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	var req requestresponse.RejectVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	version, err := h.ApprovalService.RejectVersion(r.Context(), chi.URLParam(r, "version_id"), claims.Name, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.VersionResponseFromModel(version))
}

// DownloadVersion godoc
// @Summary Descargar el archivo de una versión
// @Description Devuelve un pre-signed GET URL de corta duración.
// @Tags Versions
// @Produce json
// @Param version_id path string true "UUID de la versión"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} map[string]string
// @Failure 400 {object} requestresponse.ErrorResponse "La versión no tiene archivo"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/versions/{version_id}/download [get]
func (h *VersionHandler) DownloadVersion(w http.ResponseWriter, r *http.Request) {
	getURL, err := h.ApprovalService.DownloadURL(r.Context(), chi.URLParam(r, "version_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"get_url": getURL})
}

func listVersionsResponse(versions []model.DocumentVersion) requestresponse.ListVersionsResponse {
	resp := requestresponse.ListVersionsResponse{
		Versions: make([]requestresponse.VersionResponse, 0, len(versions)),
		Count:    len(versions),
	}
	for i := range versions {
		resp.Versions = append(resp.Versions, requestresponse.VersionResponseFromModel(&versions[i]))
	}
	return resp
}

// saveTempFile : guarda el archivo recibido en el directorio temporal
func saveTempFile(data []byte, filename string) (string, error) {
	uploadDir := filepath.Join(os.TempDir(), "uploads")

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("error creando el directorio temporal: %w", err)
	}

	uniqueName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename)
	tmpFile := filepath.Join(uploadDir, uniqueName)

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return "", fmt.Errorf("error escribiendo el archivo temporal: %w", err)
	}

	return tmpFile, nil
}

// versionStoragePath : clave S3 del archivo de una versión
func versionStoragePath(docUUID string, filename string) string {
	fileExt := filepath.Ext(filename)
	fileName := strings.TrimSuffix(filename, fileExt)
	return fmt.Sprintf("documents/%s/versions/%s-%s%s",
		docUUID,
		url.PathEscape(fileName),
		uuid.New().String()[:8],
		fileExt,
	)
}
