package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogDir = "logs"
	logFileName   = "snake.log"
	maxLogSize    = 10 * 1024 * 1024 // 10 MB
)

// setupLogging points logger at dir/snake.log when debug is set, otherwise discards
// The screen is in raw mode so logs never go to stdout or stderr
// Returns the open log file, nil when disabled or on failure
func setupLogging(logger *logrus.Logger, debug bool, dir string) *os.File {
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.InfoLevel)
		return nil
	}
	if dir == "" {
		dir = defaultLogDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	os.Rename(logPath, rotated)
}
