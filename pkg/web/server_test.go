package web

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gazepilot/go-gazepilot/pkg/attention"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pipeline, err := attention.NewPipeline(attention.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return NewServer(":0", pipeline, logger)
}

func doJSON(t *testing.T, s *Server, method, path string, body []byte, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func TestServer_Status(t *testing.T) {
	s := newTestServer(t)

	var snap attention.Snapshot
	if code := doJSON(t, s, http.MethodGet, "/api/status", nil, &snap); code != http.StatusOK {
		t.Fatalf("got status %d, want 200", code)
	}
	if snap.SessionID != "" {
		// Snapshot is zero-valued before the first frame; the session id
		// only appears once frames flow.
		t.Errorf("got session %q before any frame, want empty", snap.SessionID)
	}
}

func TestServer_TuningRoundTrip(t *testing.T) {
	s := newTestServer(t)

	var params attention.TuningParams
	if code := doJSON(t, s, http.MethodGet, "/api/tuning", nil, &params); code != http.StatusOK {
		t.Fatalf("got status %d, want 200", code)
	}
	if params.ConfirmFrames != 10 {
		t.Fatalf("got confirm_frames %d, want 10", params.ConfirmFrames)
	}

	body, _ := json.Marshal(attention.TuningParams{StabilityThreshold: 42})
	var updated attention.TuningParams
	if code := doJSON(t, s, http.MethodPost, "/api/tuning", body, &updated); code != http.StatusOK {
		t.Fatalf("got status %d, want 200", code)
	}
	if updated.StabilityThreshold != 42 {
		t.Errorf("got stability %v, want 42", updated.StabilityThreshold)
	}
}

func TestServer_TuningRejections(t *testing.T) {
	s := newTestServer(t)

	if code := doJSON(t, s, http.MethodPost, "/api/tuning", []byte("{not json"), nil); code != http.StatusBadRequest {
		t.Errorf("malformed body: got status %d, want 400", code)
	}

	// confirm_frames above the standing break_frames is invalid as a
	// whole and must change nothing.
	body, _ := json.Marshal(attention.TuningParams{ConfirmFrames: 99})
	if code := doJSON(t, s, http.MethodPost, "/api/tuning", body, nil); code != http.StatusUnprocessableEntity {
		t.Errorf("invalid combination: got status %d, want 422", code)
	}

	var params attention.TuningParams
	doJSON(t, s, http.MethodGet, "/api/tuning", nil, &params)
	if params.ConfirmFrames != 10 {
		t.Errorf("got confirm_frames %d after rejected update, want 10", params.ConfirmFrames)
	}
}

func TestServer_Reset(t *testing.T) {
	s := newTestServer(t)
	before := s.pipeline.SessionID()

	var out map[string]string
	if code := doJSON(t, s, http.MethodPost, "/api/reset", nil, &out); code != http.StatusOK {
		t.Fatalf("got status %d, want 200", code)
	}
	if out["session_id"] == "" || out["session_id"] == before {
		t.Errorf("got session %q, want a fresh id", out["session_id"])
	}
}
