package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "debug"
}

// WebLogger implements core.Logger for a single render. Messages are forwarded
// to the server log and kept for the X-Render-Log response header.
type WebLogger struct {
	renderID string
	logger   log.Logger

	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, logger log.Logger) *WebLogger {
	return &WebLogger{
		renderID: renderID,
		logger:   logger,
	}
}

var _ core.Logger = (*WebLogger)(nil)

// Infof implements core.Logger
func (wl *WebLogger) Infof(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	wl.record("info", message)
	if wl.logger != nil {
		wl.logger.Infof("[%s] %s", wl.renderID, message)
	}
}

// Debugf implements core.Logger
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	wl.record("debug", message)
	if wl.logger != nil {
		wl.logger.Debugf("[%s] %s", wl.renderID, message)
	}
}

func (wl *WebLogger) record(level, message string) {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	wl.messages = append(wl.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	})
}

// Messages returns a copy of everything logged so far
func (wl *WebLogger) Messages() []ConsoleMessage {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	return append([]ConsoleMessage(nil), wl.messages...)
}
