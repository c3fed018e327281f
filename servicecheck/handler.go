package servicecheck

import (
	"encoding/json"
	"net/http"

	"github.com/xmidt-org/servicecheck/logging"
)

const (
	// StatusHealthy is the aggregate status reported when every check passes.
	StatusHealthy = "healthy"

	// StatusUnhealthy is the aggregate status reported when any check fails.
	StatusUnhealthy = "unhealthy"
)

type checkStatus struct {
	Name     string `json:"name"`
	Healthy  bool   `json:"healthy"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type statusDocument struct {
	Status string        `json:"status"`
	Checks []checkStatus `json:"checks"`
}

// Handler exposes a Runner over HTTP.  Each request runs all checks with
// the request's context and receives a JSON status document: 200 when all
// checks pass, 503 otherwise.
type Handler struct {
	Runner *Runner
}

func (h Handler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	results := h.Runner.Run(request.Context())

	document := statusDocument{
		Status: StatusHealthy,
		Checks: make([]checkStatus, 0, len(results)),
	}

	for _, result := range results {
		status := checkStatus{
			Name:     result.Name,
			Healthy:  result.Healthy(),
			Duration: result.Duration.String(),
		}

		if result.Err != nil {
			document.Status = StatusUnhealthy
			status.Error = result.Err.Error()
		}

		document.Checks = append(document.Checks, status)
	}

	response.Header().Set("Content-Type", "application/json")
	if document.Status == StatusHealthy {
		response.WriteHeader(http.StatusOK)
	} else {
		response.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(response).Encode(document); err != nil {
		logging.Error(h.Runner.logger).Log(
			logging.MessageKey(), "could not marshal status document",
			logging.ErrorKey(), err,
		)
	}
}
