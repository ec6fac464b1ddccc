package http

import (
	"encoding/json"
	"github.com/kbsync/minio-listener/internal/service"
	"io"
	"net/http"
)

type acknowledgment struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	service.DispatchResult
}

type EventHandler struct {
	dispatcher *service.Dispatcher
}

func NewEventHandler(dispatcher *service.Dispatcher) EventHandler {
	return EventHandler{
		dispatcher: dispatcher,
	}
}

// Events accepts one bucket-notification callback. The response acknowledges
// receipt: a parsed payload is always 200, even when some records failed, and
// only a structurally bad payload is 400.
func (h EventHandler) Events(response http.ResponseWriter, request *http.Request) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		logger.Errorf("Unable to read request body: %v", err)
		respond(response, http.StatusBadRequest, acknowledgment{Error: "unable to read request body"})
		return
	}

	result, err := h.dispatcher.HandleNotification(request.Context(), body)
	if err != nil {
		logger.Error(err)
		respond(response, http.StatusBadRequest, acknowledgment{Error: err.Error()})
		return
	}

	respond(response, http.StatusOK, acknowledgment{Success: true, DispatchResult: result})
}

func (h EventHandler) Health(response http.ResponseWriter, request *http.Request) {
	respond(response, http.StatusOK, acknowledgment{Success: true})
}

func respond(response http.ResponseWriter, status int, ack acknowledgment) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(status)

	err := json.NewEncoder(response).Encode(ack)
	if err != nil {
		logger.Errorf("Unable to write response: %v", err)
	}
}
