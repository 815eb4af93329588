package signal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReplaySource plays back a recorded frame trace: one JSON-encoded
// Frame per line. Traces are how tuning sessions get reproduced without
// a camera attached.
type ReplaySource struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// OpenReplay opens a JSONL frame trace for playback.
func OpenReplay(path string) (*ReplaySource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &ReplaySource{file: file, scanner: scanner}, nil
}

// Next returns the next recorded frame, or ErrSourceClosed at EOF.
func (r *ReplaySource) Next(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	for r.scanner.Scan() {
		r.line++
		raw := r.scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			return Frame{}, fmt.Errorf("trace line %d: %w", r.line, err)
		}
		return frame, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Frame{}, fmt.Errorf("read trace: %w", err)
	}
	return Frame{}, ErrSourceClosed
}

// Close releases the underlying file.
func (r *ReplaySource) Close() error {
	return r.file.Close()
}

// WriteTrace appends frames to w in the replay format. Useful for
// capturing a live extractor session for later tuning.
func WriteTrace(w io.Writer, frames []Frame) error {
	enc := json.NewEncoder(w)
	for i, frame := range frames {
		if err := enc.Encode(frame); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return nil
}

// Ensure ReplaySource implements Source.
var _ Source = (*ReplaySource)(nil)
