package requestresponse

import (
	"center-docs-server/internal/model"
	"time"
)

// CreateVersionRequest : metadatos de la nueva versión de un documento.
// El número de versión lo asigna siempre el servidor; cualquier valor
// enviado por el cliente se ignora.
type CreateVersionRequest struct {
	FileName     string `json:"file_name,omitempty" example:"reglamento-interno.pdf"`
	SizeBytes    int64  `json:"size_bytes,omitempty" example:"482133"`
	MimeType     string `json:"mime_type,omitempty" example:"application/pdf"`
	ChangeReason string `json:"change_reason" example:"Actualización del capítulo de seguridad"`
}

// CreateVersionResponse : versión creada más el pre-signed URL de subida si hay archivo
type CreateVersionResponse struct {
	Version VersionResponse `json:"version"`
	PutURL  string          `json:"put_url,omitempty"`
}

// RejectVersionRequest : cuerpo del rechazo de una versión
type RejectVersionRequest struct {
	Reason string `json:"reason" example:"Falta la firma del responsable del centro"`
}

// VersionResponse : describe una versión para la respuesta JSON
type VersionResponse struct {
	UUID            string  `json:"id"`
	DocumentUUID    string  `json:"document_id"`
	Version         int     `json:"version" example:"3"`
	FileName        *string `json:"file_name,omitempty"`
	SizeBytes       *int64  `json:"size_bytes,omitempty"`
	MimeType        *string `json:"mime_type,omitempty"`
	ChangeReason    string  `json:"change_reason"`
	ApprovalStatus  string  `json:"approval_status" example:"pending"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at" example:"2025-08-23T12:34:56Z"`
}

// VersionResponseFromModel : convierte model.DocumentVersion en VersionResponse
func VersionResponseFromModel(v *model.DocumentVersion) VersionResponse {
	resp := VersionResponse{
		UUID:            v.UUID,
		DocumentUUID:    v.DocumentUUID,
		Version:         v.Version,
		FileName:        v.FileName,
		SizeBytes:       v.SizeBytes,
		MimeType:        v.MimeType,
		ChangeReason:    v.ChangeReason,
		ApprovalStatus:  v.ApprovalStatus,
		ApprovedBy:      v.ApprovedBy,
		RejectionReason: v.RejectionReason,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
	}
	if v.ApprovedAt != nil {
		formatted := v.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &formatted
	}
	return resp
}

// ListVersionsResponse : respuesta con la lista de versiones de un documento
type ListVersionsResponse struct {
	Versions []VersionResponse `json:"versions"`
	Count    int               `json:"count" example:"4"`
}

// CurrentVersionResponse : versión vigente más el pre-signed GET URL si hay archivo
type CurrentVersionResponse struct {
	Version VersionResponse `json:"version"`
	GetURL  string          `json:"get_url,omitempty"`
}
