package handler

import (
	requestresponse "center-docs-server/internal/model/requestresponse"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService}
}

// ListNotifications godoc
// @Summary Notificaciones del usuario autenticado
// @Tags Notifications
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListNotificationsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationService.ListForUser(r.Context(), claims.UserUUID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := requestresponse.ListNotificationsResponse{
		Notifications: make([]requestresponse.NotificationResponse, 0, len(notifications)),
		Count:         len(notifications),
	}
	for i := range notifications {
		resp.Notifications = append(resp.Notifications, requestresponse.NotificationResponseFromModel(&notifications[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// MarkNotificationRead godoc
// @Summary Marcar una notificación propia como leída
// @Tags Notifications
// @Produce json
// @Param notification_id path string true "UUID de la notificación"
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 404 {object} requestresponse.ErrorResponse "No existe o pertenece a otro usuario"
// @Router /api/notifications/{notification_id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	if err := h.NotificationService.MarkRead(r.Context(), chi.URLParam(r, "notification_id"), claims.UserUUID); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "notificación marcada como leída"})
}
