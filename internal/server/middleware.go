package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"pdf-stitcher/gen/go/stitcherconnect"
)

// NewMux mounts the Connect service, the upload endpoint and a health check.
func NewMux(s *Service) *http.ServeMux {
	mux := http.NewServeMux()

	path, handler := stitcherconnect.NewStitchServiceHandler(s)
	mux.Handle(path, corsMiddleware(s.log, handler))
	mux.Handle("/upload", corsMiddleware(s.log, http.HandlerFunc(s.Upload)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func corsMiddleware(log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Stitch-Pages")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"bytes":  r.ContentLength,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}
