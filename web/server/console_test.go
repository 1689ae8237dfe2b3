package server

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func drain(ch chan ConsoleMessage) []ConsoleMessage {
	close(ch)
	var msgs []ConsoleMessage
	for msg := range ch {
		msgs = append(msgs, msg)
	}
	return msgs
}

func renderWithConsole(t *testing.T, onRow renderer.RowCallback) ([]ConsoleMessage, error) {
	t.Helper()
	consoleChan := make(chan ConsoleMessage, 10)
	rl := newRenderLogger("render-1", consoleChan)

	s := scene.NewSimpleScene().WithOverrides(scene.Overrides{Width: 4, Height: 4})
	pr := renderer.NewParallelRaytracer(s, renderer.ParallelConfig{NumWorkers: 2}, rl)
	_, _, err := pr.Render(context.Background(), onRow)
	return drain(consoleChan), err
}

func TestRenderLogger_CompletedRender(t *testing.T) {
	msgs, err := renderWithConsole(t, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("Expected start and completion lines, got %+v", msgs)
	}

	if msgs[0].Message != "Rendering 4x4 with 2 workers" {
		t.Errorf("Unexpected start line %q", msgs[0].Message)
	}
	if !strings.HasPrefix(msgs[1].Message, "Render completed in ") {
		t.Errorf("Unexpected completion line %q", msgs[1].Message)
	}
	for _, msg := range msgs {
		if msg.Type != "console" || msg.Level != "info" || msg.RenderID != "render-1" {
			t.Errorf("Unexpected console message %+v", msg)
		}
		if strings.HasSuffix(msg.Message, "\n") {
			t.Errorf("Expected trailing newline to be trimmed from %q", msg.Message)
		}
		if msg.Timestamp.IsZero() {
			t.Error("Expected a timestamp")
		}
	}
}

func TestRenderLogger_StoppedRenderIsWarning(t *testing.T) {
	gone := errors.New("client gone")
	msgs, err := renderWithConsole(t, func(y int, row []core.Color) error {
		return gone
	})
	if !errors.Is(err, gone) {
		t.Fatalf("Expected the callback error, got %v", err)
	}

	last := msgs[len(msgs)-1]
	if !strings.HasPrefix(last.Message, "Render stopped after ") || !strings.Contains(last.Message, "client gone") {
		t.Errorf("Unexpected stop line %q", last.Message)
	}
	if last.Level != "warning" {
		t.Errorf("Expected stop line at warning level, got %q", last.Level)
	}
}

func TestRenderLogger_FullQueueDrops(t *testing.T) {
	consoleChan := make(chan ConsoleMessage, 1)
	rl := newRenderLogger("render-2", consoleChan)

	for y := 0; y < 3; y++ {
		rl.Printf("row %d done\n", y)
	}

	if got := rl.Dropped(); got != 2 {
		t.Errorf("Expected 2 dropped lines, got %d", got)
	}
	msgs := drain(consoleChan)
	if len(msgs) != 1 || msgs[0].Message != "row 0 done" {
		t.Errorf("Expected only the first line queued, got %+v", msgs)
	}
}

func TestRenderLogger_NilQueue(t *testing.T) {
	rl := newRenderLogger("render-3", nil)
	rl.Printf("Render completed in %v\n", 0)
	if rl.Dropped() != 0 {
		t.Errorf("Expected nothing counted as dropped without a queue, got %d", rl.Dropped())
	}
}

func TestConsoleLevel(t *testing.T) {
	testCases := []struct {
		message string
		want    string
	}{
		{"Rendering 64x64 with 8 workers", "info"},
		{"Render completed in 12ms", "info"},
		{"Render stopped after 3 of 64 rows: context canceled", "warning"},
	}
	for _, tc := range testCases {
		if got := consoleLevel(tc.message); got != tc.want {
			t.Errorf("consoleLevel(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
