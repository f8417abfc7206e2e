package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rootedlightwithin-create/Healing-Guru/internal/util"
)

// RequestIDHeader echoes the id used to correlate a request's log lines.
const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument tags the request with an id, logs its outcome and, when metrics
// are configured, records count, latency and in-flight requests for route.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := util.GenerateRequestID()
		w.Header().Set(RequestIDHeader, reqID)
		if s.metrics != nil {
			s.metrics.HTTPRequestsInFlight.Inc()
			defer s.metrics.HTTPRequestsInFlight.Dec()
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		elapsed := time.Since(start)
		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(route, strconv.Itoa(rec.status), elapsed)
		}
		slog.Debug("Server: request served", "request_id", reqID, "route", route, "method", r.Method, "status", rec.status, "duration", elapsed)
	}
}
