package handler

import (
	"center-docs-server/internal/apperr"
	"center-docs-server/internal/util"
	"encoding/json"
	"log"
	"net/http"
)

// respondError : traduce un error de la capa de servicio al status HTTP que le
// corresponde. Los errores internos no exponen el detalle al cliente.
func respondError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Println(err)
		message = "error interno del servidor"
	}
	util.HandleError(w, message, status)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[Handler] error serializando la respuesta: %v", err)
	}
}
