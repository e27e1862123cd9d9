package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger
	silent      bool
)

func setupLogging(debugEnabled bool) {
	logDir := filepath.Join(baseDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Printf("could not create log directory: %v\n", err)
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "client.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	errWriter := io.MultiWriter(os.Stdout, rotated)
	errorLogger = log.New(errWriter, "", log.LstdFlags)
	log.SetOutput(errWriter)

	if debugEnabled {
		debugLogger = log.New(errWriter, "", log.LstdFlags)
	}
}

func logError(format string, v ...interface{}) {
	if errorLogger != nil {
		errorLogger.Printf(format, v...)
	}
	if !silent {
		chatMessage(fmt.Sprintf(format, v...))
	}
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
