package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogDir is the debug log directory, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log
	LogFileName = "snake.log"

	// MaxLogSize triggers rotation of the active log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to logs/snake.log when debug is set
// and discards it otherwise; an oversized log is renamed with a timestamp first
// The caller closes the returned file, nil when logging is off or unavailable
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("debug logging started")
	return f
}
