package server

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// ConsoleMessage is one render log line forwarded to the preview client
type ConsoleMessage struct {
	Type      string    `json:"type"` // always "console"
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "warning"
}

// renderLogger receives a render's progress lines, mirrors them into the
// server log and queues them for the client without ever blocking the render
type renderLogger struct {
	renderID string
	out      chan<- ConsoleMessage
	dropped  atomic.Int64
}

func newRenderLogger(renderID string, out chan<- ConsoleMessage) *renderLogger {
	return &renderLogger{renderID: renderID, out: out}
}

// Printf implements core.Logger
func (rl *renderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	level := consoleLevel(message)

	if level == "warning" {
		logger.Warningf("[%s] %s", rl.renderID, message)
	} else {
		logger.Infof("[%s] %s", rl.renderID, message)
	}

	if rl.out == nil {
		return
	}
	select {
	case rl.out <- ConsoleMessage{
		Type:      "console",
		RenderID:  rl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		rl.dropped.Add(1)
	}
}

// Dropped reports how many lines were discarded because the queue was full
func (rl *renderLogger) Dropped() int64 {
	return rl.dropped.Load()
}

// consoleLevel marks interrupted renders as warnings
func consoleLevel(message string) string {
	if strings.HasPrefix(message, "Render stopped") {
		return "warning"
	}
	return "info"
}
