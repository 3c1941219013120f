package requestresponse

import (
	"center-docs-server/internal/model"
	"time"
)

// ResolveIncidentRequest : decisión del revisor sobre una incidencia
type ResolveIncidentRequest struct {
	Status  string `json:"status" example:"closed"`
	Comment string `json:"comment,omitempty" example:"Documento renovado y cargado"`
}

// IncidentResponse : describe una incidencia para la respuesta JSON
type IncidentResponse struct {
	UUID              string  `json:"id"`
	Type              string  `json:"type" example:"document_observed"`
	Status            string  `json:"status" example:"pending"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	CenterUUID        *string `json:"center_id,omitempty"`
	DocumentUUID      *string `json:"document_id,omitempty"`
	CreatedByName     string  `json:"created_by_name" example:"Sistema Automático"`
	ResolutionComment *string `json:"resolution_comment,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// IncidentResponseFromModel : convierte model.Incident en IncidentResponse
func IncidentResponseFromModel(in *model.Incident) IncidentResponse {
	return IncidentResponse{
		UUID:              in.UUID,
		Type:              in.Type,
		Status:            in.Status,
		Title:             in.Title,
		Description:       in.Description,
		CenterUUID:        in.CenterUUID,
		DocumentUUID:      in.DocumentUUID,
		CreatedByName:     in.CreatedByName,
		ResolutionComment: in.ResolutionComment,
		CreatedAt:         in.CreatedAt.Format(time.RFC3339),
	}
}

// ListIncidentsResponse : respuesta con la lista de incidencias
type ListIncidentsResponse struct {
	Incidents []IncidentResponse `json:"incidents"`
	Count     int                `json:"count" example:"3"`
}
