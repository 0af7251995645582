package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dropscout/internal/service"
	"dropscout/internal/util"
	"dropscout/pkg/response"
)

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	response.Success(w, resp, "")
}

// ClassifyHandler classifies one page. GET takes a 'url' query parameter and
// fetches the page server-side; POST takes a JSON body with the page URL and
// optionally the client's live HTML and local-storage snapshot.
func ClassifyHandler(svc *service.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.Input

		switch r.Method {
		case http.MethodGet:
			input.URL = r.URL.Query().Get("url")
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				response.Error(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if input.URL == "" {
			response.Error(w, http.StatusBadRequest, "missing 'url' parameter")
			return
		}
		if !util.IsValidURL(input.URL) {
			response.Error(w, http.StatusBadRequest, "invalid 'url' format")
			return
		}

		result, err := svc.Classify(r.Context(), input)
		if err != nil {
			var statusCode int
			switch {
			case errors.Is(err, context.DeadlineExceeded),
				errors.Is(err, context.Canceled):
				statusCode = http.StatusGatewayTimeout
			case strings.Contains(err.Error(), "connection refused"),
				strings.Contains(err.Error(), "no such host"),
				strings.Contains(err.Error(), "timeout"):
				statusCode = http.StatusBadGateway
			default:
				statusCode = http.StatusInternalServerError
			}
			response.Error(w, statusCode, fmt.Sprintf("failed to classify page: %v", err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response.Success(w, result, "")
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
