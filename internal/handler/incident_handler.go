package handler

import (
	requestresponse "center-docs-server/internal/model/requestresponse"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type IncidentHandler struct {
	ports.IncidentService
}

func NewIncidentHandler(incidentService ports.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService}
}

// ListIncidents godoc
// @Summary Incidencias registradas
// @Description Lista las incidencias, opcionalmente filtradas por estado
// (pending, approved, rejected, closed).
// @Tags Incidents
// @Produce json
// @Param status query string false "Estado de la incidencia"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListIncidentsResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Estado desconocido"
// @Router /api/incidents [get]
func (h *IncidentHandler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.IncidentService.ListIncidents(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := requestresponse.ListIncidentsResponse{
		Incidents: make([]requestresponse.IncidentResponse, 0, len(incidents)),
		Count:     len(incidents),
	}
	for i := range incidents {
		resp.Incidents = append(resp.Incidents, requestresponse.IncidentResponseFromModel(&incidents[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ResolveIncident godoc
// @Summary Resolver una incidencia pendiente
// @Description Registra la decisión del revisor. Una incidencia ya resuelta no
// admite una segunda decisión.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident_id path string true "UUID de la incidencia"
// @Param body body requestresponse.ResolveIncidentRequest true "Decisión y comentario"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.IncidentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Decisión desconocida"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "La incidencia ya fue resuelta"
// @Router /api/incidents/{incident_id}/resolve [post]
func (h *IncidentHandler) ResolveIncident(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	var req requestresponse.ResolveIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	incident, err := h.IncidentService.ResolveIncident(r.Context(), chi.URLParam(r, "incident_id"), req.Status, req.Comment, claims.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.IncidentResponseFromModel(incident))
}
