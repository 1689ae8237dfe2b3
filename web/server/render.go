package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Preview clients may be served from anywhere
	},
}

// RowMessage carries one finished scanline as gamma-corrected 8-bit RGB
// triples
type RowMessage struct {
	Type   string `json:"type"` // always "row"
	Y      int    `json:"y"`
	Pixels []int  `json:"pixels"` // r,g,b,r,g,b,...
}

// CompleteMessage is sent once every row has been streamed
type CompleteMessage struct {
	Type      string `json:"type"` // always "complete"
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Workers   int    `json:"workers"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// ErrorMessage reports a render that could not finish
type ErrorMessage struct {
	Type    string `json:"type"` // always "error"
	Message string `json:"message"`
}

// handleRender streams a render over a websocket, one message per finished row
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Reject bad requests before upgrading so clients get a plain HTTP error
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warningf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// A single goroutine owns all writes to the connection
	messages := make(chan interface{}, 64)
	written := make(chan struct{})
	go s.writeMessages(conn, messages, cancel, written)
	go s.readUntilClosed(conn, cancel)

	consoleChan, renderLog := s.setupConsoleLogging()
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for msg := range consoleChan {
			send(ctx, messages, msg)
		}
	}()

	raytracer := renderer.NewParallelRaytracer(sceneObj, renderer.ParallelConfig{NumWorkers: req.Workers}, renderLog)
	gamma := float32(req.Gamma)

	_, stats, err := raytracer.Render(ctx, func(y int, row []core.Color) error {
		return send(ctx, messages, rowMessage(y, row, gamma))
	})

	close(consoleChan)
	<-forwarded
	if n := renderLog.Dropped(); n > 0 {
		logger.Debugf("dropped %d console lines for a slow client", n)
	}

	if err != nil {
		send(ctx, messages, ErrorMessage{Type: "error", Message: err.Error()})
	} else {
		send(ctx, messages, CompleteMessage{
			Type:      "complete",
			Width:     stats.Width,
			Height:    stats.Height,
			Workers:   stats.Workers,
			ElapsedMs: stats.Elapsed.Milliseconds(),
		})
	}

	close(messages)
	<-written

	deadline := time.Now().Add(time.Second)
	conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
}

// setupConsoleLogging creates the console queue and logger for one render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, *renderLogger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, newRenderLogger(renderID, consoleChan)
}

// writeMessages writes queued messages until the queue is closed. After a
// write error it cancels the render and discards the rest.
func (s *Server) writeMessages(conn *websocket.Conn, messages <-chan interface{}, cancel context.CancelFunc, done chan<- struct{}) {
	defer close(done)

	for msg := range messages {
		if err := conn.WriteJSON(msg); err != nil {
			logger.Warningf("websocket write error: %v", err)
			cancel()
			for range messages {
			}
			return
		}
	}
}

// readUntilClosed cancels the render when the client goes away
func (s *Server) readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cancel()
			return
		}
	}
}

// send queues msg for the writer unless the render has been cancelled
func send(ctx context.Context, messages chan<- interface{}, msg interface{}) error {
	select {
	case messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func rowMessage(y int, row []core.Color, gamma float32) RowMessage {
	pixels := make([]int, 0, 3*len(row))
	for _, c := range row {
		px := renderer.ColorToRGBA(c, gamma)
		pixels = append(pixels, int(px.R), int(px.G), int(px.B))
	}
	return RowMessage{Type: "row", Y: y, Pixels: pixels}
}
