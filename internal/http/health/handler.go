package health

import (
	"encoding/json"
	"net/http"

	applog "github.com/janisto/hello-cicd/internal/platform/logging"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler returns a liveness probe reporting the running build version.
// It is mounted directly on the router and kept out of the OpenAPI document.
func Handler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Response{Status: "healthy", Version: version}); err != nil {
			applog.LogError(r.Context(), "failed to write health response", err)
		}
	}
}
