package handler

import (
	"net/http"

	"filebox/internal/httputil"
)

// HealthCheck reports liveness
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondData(w, http.StatusOK, map[string]string{"status": "ok"})
}
