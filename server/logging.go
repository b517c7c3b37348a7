package server

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

func setupLogging(logDir string) (*os.File, error) {
	// Create logs directory if it doesn't exist
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, err
	}

	logFileName := filepath.Join(logDir, "app.log")
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// Log to both file and console
	mw := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(mw)

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return logFile, nil
}
