package signal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTraceFile(t *testing.T, frames []Frame) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create trace: %v", err)
	}
	defer f.Close()
	if err := WriteTrace(f, frames); err != nil {
		t.Fatalf("WriteTrace: %v", err)
	}
	return path
}

func TestReplaySource_RoundTrip(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	frames := []Frame{
		{FacePresent: true, EAR: 0.31, Position: Point{X: 100, Y: 120}, At: base},
		{FacePresent: true, EAR: 0.09, Position: Point{X: 101, Y: 119}, At: base.Add(33 * time.Millisecond)},
		{FacePresent: false, At: base.Add(66 * time.Millisecond)},
	}

	src, err := OpenReplay(writeTraceFile(t, frames))
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	ctx := context.Background()
	for i, want := range frames {
		got, err := src.Next(ctx)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got.FacePresent != want.FacePresent || got.EAR != want.EAR || got.Position != want.Position {
			t.Errorf("frame %d: got %+v, want %+v", i, got, want)
		}
		if !got.At.Equal(want.At) {
			t.Errorf("frame %d: got timestamp %v, want %v", i, got.At, want.At)
		}
	}

	if _, err := src.Next(ctx); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("got %v at end of trace, want %v", err, ErrSourceClosed)
	}
}

func TestReplaySource_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	content := `{"face_present":true,"ear":0.3,"position":{"x":1,"y":2},"at":"2026-03-14T12:00:00Z"}` + "\n\nnot json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write trace: %v", err)
	}

	src, err := OpenReplay(path)
	if err != nil {
		t.Fatalf("OpenReplay: %v", err)
	}
	defer src.Close()

	ctx := context.Background()
	if _, err := src.Next(ctx); err != nil {
		t.Fatalf("first frame: %v", err)
	}

	// The blank line is skipped; the garbage line errors with its number.
	_, err = src.Next(ctx)
	if err == nil {
		t.Fatal("malformed line accepted")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("got %q, want the line number in the error", err)
	}
}

func TestReplaySource_MissingFile(t *testing.T) {
	if _, err := OpenReplay(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("missing trace accepted")
	}
}
