package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// LogError : escribe el error en el log y lo devuelve envuelto con el mismo
// mensaje, para que la capa superior no tenga que volver a registrarlo
func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : respuesta de error JSON uniforme {error, message, code}
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
