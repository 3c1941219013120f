package security_test

import (
	"center-docs-server/internal/model"
	"center-docs-server/internal/security"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan_RoleCapabilities(t *testing.T) {
	tests := []struct {
		role       string
		capability security.Capability
		expected   bool
	}{
		{model.RoleUser, security.CapReadDocuments, true},
		{model.RoleUser, security.CapCreateVersion, true},
		{model.RoleUser, security.CapReadNotifications, true},
		{model.RoleUser, security.CapDecideVersion, false},
		{model.RoleUser, security.CapCreateDocument, false},
		{model.RoleUser, security.CapResolveIncident, false},
		{model.RoleAdmin, security.CapDecideVersion, true},
		{model.RoleAdmin, security.CapResolveIncident, true},
		{model.RoleSuperAdmin, security.CapDecideVersion, true},
		{"rol-desconocido", security.CapReadDocuments, false},
		{"", security.CapReadDocuments, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+string(tt.capability), func(t *testing.T) {
			assert.Equal(t, tt.expected, security.Can(tt.role, tt.capability))
		})
	}
}

func TestRequireCapability(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := security.RequireCapability(security.CapDecideVersion)(next)

	tests := []struct {
		name           string
		claims         *security.Claims
		expectedStatus int
	}{
		{
			name:           "Admin puede decidir versiones",
			claims:         &security.Claims{UserUUID: "u1", Name: "Admin", Role: model.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Usuario normal recibe 403",
			claims:         &security.Claims{UserUUID: "u2", Name: "User", Role: model.RoleUser},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Sin sesión recibe 401",
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/versions/ver1/approve", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), security.UserContextKey, tt.claims))
			}

			recorder := httptest.NewRecorder()
			middleware.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
