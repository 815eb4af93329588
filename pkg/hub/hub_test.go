package hub

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	h := New("test", testLogger())

	if err := h.BroadcastJSON(map[string]int{"frames": 1}); err != nil {
		t.Errorf("BroadcastJSON: %v", err)
	}
	if got := h.ClientCount(); got != 0 {
		t.Errorf("got %d clients, want 0", got)
	}
}

func TestHub_BroadcastJSONRejectsUnmarshalable(t *testing.T) {
	h := New("test", testLogger())

	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("unmarshalable value accepted")
	}
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	h := New("test", testLogger())

	// Nobody is draining the broadcast channel; overflow is dropped, not
	// blocked on.
	for i := 0; i < 200; i++ {
		h.Broadcast([]byte("snapshot"))
	}
}
