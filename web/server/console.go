package server

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// ConsoleMessage is one log line forwarded to the browser console
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WebLogger implements core.Logger by forwarding each line to a channel.
// Sends never block; lines that do not fit are counted and dropped.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
	dropped     atomic.Int64
}

// NewWebLogger creates a logger for one render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{renderID: renderID, consoleChan: consoleChan}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Printf("[%s] %s\n", wl.renderID, message)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{RenderID: wl.renderID, Message: message, Timestamp: time.Now()}:
	default:
		wl.dropped.Add(1)
	}
}

// Dropped returns the number of lines that did not fit in the channel
func (wl *WebLogger) Dropped() int64 {
	return wl.dropped.Load()
}
