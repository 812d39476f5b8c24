package energy

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"Setpoint/internal/metrics"

	"go.uber.org/zap"
)

// InvalidRangeMessage is returned to clients whose setpoints move the wrong way.
const InvalidRangeMessage = "Starting setpoint range not contained in adjusted setpoint range"

type Handler struct {
	Model   *Model
	Logger  *zap.SugaredLogger
	Metrics *metrics.Metrics
}

type errorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Message: message})
}

// Calc serves GET /api?csp0=&csp1=&hsp0=&hsp1=&climate=
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	res, status, msg := h.Run(r)
	if status != http.StatusOK {
		WriteError(w, status, msg)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Run parses and evaluates a savings query. On failure it returns the HTTP
// status and client-facing message.
func (h *Handler) Run(r *http.Request) (Response, int, string) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.Metrics.ObserveRequest("invalid")
		if errors.Is(err, ErrInvalidRange) {
			return Response{}, http.StatusBadRequest, InvalidRangeMessage
		}
		return Response{}, http.StatusBadRequest, err.Error()
	}

	start := time.Now()
	res, err := h.Model.Evaluate(req)
	h.Metrics.ObserveCalculation(time.Since(start))
	if err != nil {
		h.Metrics.ObserveRequest("error")
		h.logger().Errorw("savings calculation failed", "climate", req.Climate, "error", err)
		return Response{}, http.StatusInternalServerError, "Calculation error"
	}
	h.Metrics.ObserveRequest("ok")
	return res, http.StatusOK, ""
}

func (h *Handler) logger() *zap.SugaredLogger {
	if h.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return h.Logger
}
