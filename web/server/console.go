package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Level is the severity shown next to a console line in the browser
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ConsoleMessage is one render log line forwarded as an SSE "console" event
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
}

// WebLogger forwards render log lines to one render's console stream and mirrors
// them to the server log tagged with the render ID.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf logs at info level, satisfying core.Logger for the renderer
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.Logf(LevelInfo, format, args...)
}

// Logf logs a line at the given level. Sends never block; lines are dropped
// when the console stream is behind.
func (wl *WebLogger) Logf(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s: %s", wl.renderID, level, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}

// outcomeLevel maps a render result to the level its summary line is logged at.
// A client hanging up is expected, so cancellation is only a warning.
func outcomeLevel(err error) Level {
	switch {
	case err == nil:
		return LevelInfo
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return LevelWarning
	default:
		return LevelError
	}
}
