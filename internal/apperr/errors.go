// Package apperr define la taxonomía de errores del dominio.
// Los servicios envuelven estos centinelas y los handlers los traducen
// una sola vez a códigos HTTP en la frontera.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound : el documento o la versión no existe
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrValidation : violación de esquema o de regla de negocio
	ErrValidation = errors.New("datos inválidos")
	// ErrInvalidState : transición desde un estado que ya no es pendiente
	ErrInvalidState = errors.New("estado inválido para la operación")
	// ErrStore : fallo de la capa de persistencia
	ErrStore = errors.New("error de almacenamiento")
	// ErrUnauthorized : credenciales o token de administración no válidos
	ErrUnauthorized = errors.New("no autorizado")
)

// NotFound : envuelve ErrNotFound con contexto
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Validation : envuelve ErrValidation con contexto
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// InvalidState : envuelve ErrInvalidState con contexto
func InvalidState(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidState)
}

// Unauthorized : envuelve ErrUnauthorized con contexto
func Unauthorized(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnauthorized)
}

// Store : envuelve el error de la BD conservando la causa
func Store(msg string, cause error) error {
	return fmt.Errorf("%s: %v: %w", msg, cause, ErrStore)
}

// HTTPStatus : traduce un error del dominio a su código HTTP
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
