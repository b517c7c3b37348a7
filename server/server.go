package server

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitdash/config"
)

var srvConfig *config.Config

// Routes builds the dashboard mux with logging, metrics and panic recovery.
func Routes(cfg *config.Config) http.Handler {
	srvConfig = cfg

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir(cfg.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/upload", uploadHandler)
	mux.HandleFunc("/sample", sampleHandler)
	mux.HandleFunc("/activity", activityHandler)

	mux.Handle("/metrics", promhttp.Handler())

	return recoveryMiddleware(loggingMiddleware(mux))
}

// Serve sets up logging and blocks serving the dashboard.
func Serve(cfg *config.Config) error {
	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Printf("Server starting on http://localhost%s", cfg.Addr)

	return http.ListenAndServe(cfg.Addr, Routes(cfg))
}
