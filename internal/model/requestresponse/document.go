package requestresponse

import (
	"center-docs-server/internal/model"
	"time"
)

// CreateDocumentRequest : metadatos de un documento lógico
type CreateDocumentRequest struct {
	Name           string `json:"name" example:"Reglamento interno"`
	Type           string `json:"type" example:"reglamento"`
	CenterUUID     string `json:"center_id" example:"centro-uuid-1234"`
	DepartmentUUID string `json:"department_id" example:"depto-uuid-5678"`
	ExpirationDate string `json:"expiration_date,omitempty" example:"2026-12-31T00:00:00Z"`
}

// DocumentResponse : describe un documento para la respuesta JSON
type DocumentResponse struct {
	UUID           string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	CenterUUID     string `json:"center_id"`
	DepartmentUUID string `json:"department_id"`
	CurrentVersion int    `json:"current_version" example:"2"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// DocumentResponseFromModel : convierte model.Document en DocumentResponse
func DocumentResponseFromModel(doc *model.Document) DocumentResponse {
	resp := DocumentResponse{
		UUID:           doc.UUID,
		Name:           doc.Name,
		Type:           doc.Type,
		CenterUUID:     doc.CenterUUID,
		DepartmentUUID: doc.DepartmentUUID,
		CurrentVersion: doc.CurrentVersion,
		CreatedAt:      doc.CreatedAt.Format(time.RFC3339),
	}
	if doc.ExpirationDate != nil {
		resp.ExpirationDate = doc.ExpirationDate.Format(time.RFC3339)
	}
	return resp
}

// ErrorResponse : objeto común de error
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"descripción del error"`
	Code    int    `json:"code" example:"404"`
}

// SuccessResponse : respuesta estándar de operación completada
type SuccessResponse struct {
	Message string `json:"message" example:"Operación realizada correctamente"`
}
