package handler

import (
	requestresponse "center-docs-server/internal/model/requestresponse"
	"center-docs-server/internal/ports"
	"center-docs-server/internal/security"
	"center-docs-server/internal/util"
	"encoding/json"
	"net/http"
)

type AuthenticationHandler struct {
	ports.UserService
}

func NewAuthenticationHandler(userService ports.UserService) *AuthenticationHandler {
	return &AuthenticationHandler{userService}
}

// Login godoc
// @Summary Iniciar sesión
// @Description Valida las credenciales y devuelve un access token con el uuid,
// nombre y rol del usuario.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Credenciales"
// @Success 200 {object} requestresponse.TokenResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Credenciales no válidas"
// @Router /api/auth [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	accessToken, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(w, "credenciales no válidas", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.TokenResponse{AccessToken: accessToken})
}

// Me godoc
// @Summary Identidad de la sesión actual
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer token" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MeResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "usuario no autenticado", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MeResponse{
		UUID: claims.UserUUID,
		Name: claims.Name,
		Role: claims.Role,
	})
}

// Register godoc
// @Summary Alta de usuario
// @Description Crea un usuario nuevo. Requiere el token de administración del
// servidor; no es un registro abierto.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Datos del usuario"
// @Success 201 {object} requestresponse.MeResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Password o rol no válidos"
// @Failure 401 {object} requestresponse.ErrorResponse "Token de administración no válido"
// @Router /api/register [post]
func (h *AuthenticationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "formato del request no válido", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.AdminToken, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestresponse.MeResponse{
		UUID: user.UUID,
		Name: user.Name,
		Role: user.Role,
	})
}
