// Package log provides a global logger with configurable logging level. The intended use is for
// development builds.

package log

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anamolies that are not expected to occur during normal use.
	LevelWarning              // Logs anamolies that are expected to occur occasionally during normal use.
	LevelInfo                 // Logs major events.
	LevelDebug                // Logs detailed IO
)

var globalLogLevel Level
var globalTag string
var logMutex sync.Mutex

var labels = map[Level]string{
	LevelDebug:   "[debug]",
	LevelInfo:    "[info ]",
	LevelWarning: "[warn ]",
	LevelError:   "[error]",
}

func SetLevel(level Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalLogLevel = level
}

// SetTag prepends tag to every log line. The plugin uses this to distinguish its output from the
// host application's.
func SetTag(tag string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalTag = tag
}

func logConfig() (Level, string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	return globalLogLevel, globalTag
}

func log(level Level, format string, a ...interface{}) {
	maxLevel, tag := logConfig()
	if level > maxLevel {
		return
	}
	msg := fmt.Sprintf("%s %s ", time.Now().Format(time.RFC3339), labels[level])
	if tag != "" {
		msg += tag + ": "
	}
	msg += fmt.Sprintf(format, a...)
	fmt.Fprintln(os.Stderr, msg)
}

func Debug(format string, a ...interface{}) {
	log(LevelDebug, format, a...)
}
func Info(format string, a ...interface{}) {
	log(LevelInfo, format, a...)
}
func Warning(format string, a ...interface{}) {
	log(LevelWarning, format, a...)
}
func Error(format string, a ...interface{}) {
	log(LevelError, format, a...)
}
