package security

import (
	"center-docs-server/internal/model"
	"net/http"
)

// Capability : operación concreta que un rol puede ejecutar. La tabla se
// evalúa en el servidor antes de invocar el motor de aprobación; el rol
// sale de los claims de la sesión.
type Capability string

const (
	CapReadDocuments     Capability = "read_documents"
	CapCreateDocument    Capability = "create_document"
	CapCreateVersion     Capability = "create_version"
	CapDecideVersion     Capability = "decide_version"
	CapResolveIncident   Capability = "resolve_incident"
	CapReadNotifications Capability = "read_notifications"
)

var roleCapabilities = map[string][]Capability{
	model.RoleUser: {
		CapReadDocuments,
		CapCreateVersion,
		CapReadNotifications,
	},
	model.RoleAdmin: {
		CapReadDocuments,
		CapCreateDocument,
		CapCreateVersion,
		CapDecideVersion,
		CapResolveIncident,
		CapReadNotifications,
	},
	model.RoleSuperAdmin: {
		CapReadDocuments,
		CapCreateDocument,
		CapCreateVersion,
		CapDecideVersion,
		CapResolveIncident,
		CapReadNotifications,
	},
}

// Can : indica si el rol tiene la capacidad
func Can(role string, capability Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// RequireCapability : corta con 403 si el rol de la sesión no puede ejecutar la operación
func RequireCapability(capability Capability) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetClaimsFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !Can(claims.Role, capability) {
				http.Error(w, "permiso insuficiente", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
