// Package signal defines the per-frame measurement types produced by an
// external landmark extractor and consumed by the attention pipeline.
//
// The extractor itself (mediapipe, YuNet, anything that yields eye
// geometry) lives outside this module; this package is the boundary.
package signal

import (
	"context"
	"errors"
	"math"
	"time"
)

// Sentinel errors for the signal package.
var (
	// ErrDegenerateEye indicates the horizontal eye-corner distance is
	// too small to form a defined aspect ratio.
	ErrDegenerateEye = errors.New("signal: degenerate eye geometry")

	// ErrSourceClosed indicates the source has no more frames.
	ErrSourceClosed = errors.New("signal: source closed")
)

// Point is a 2D position in pixel or normalized coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is one measurement from the extractor. When FacePresent is
// false the EAR and Position fields are meaningless and must be ignored.
// Frames are passed by value and never retained across pipeline steps.
type Frame struct {
	FacePresent bool      `json:"face_present"`
	EAR         float64   `json:"ear"`
	Position    Point     `json:"position"`
	At          time.Time `json:"at"`
}

// ValidEAR reports whether the frame carries a usable eye-aspect-ratio
// reading. NaN, infinite, and negative ratios are treated as missing
// readings, not as errors.
func (f Frame) ValidEAR() bool {
	return !math.IsNaN(f.EAR) && !math.IsInf(f.EAR, 0) && f.EAR >= 0
}

// Source yields frames, one per processed camera frame.
// Next blocks until a frame is available, the context is cancelled,
// or the source is exhausted (ErrSourceClosed).
type Source interface {
	Next(ctx context.Context) (Frame, error)
}

// minEyeSpan is the smallest horizontal eye-corner distance accepted by
// EyeAspectRatio. Below this the ratio is numerically meaningless.
const minEyeSpan = 1e-6

// EyeAspectRatio computes the standard 6-point EAR:
//
//	EAR = (|p2-p6| + |p3-p5|) / (2 * |p1-p4|)
//
// where p1/p4 are the eye corners and p2,p3/p5,p6 the upper/lower lids.
// Returns ErrDegenerateEye when the corner-to-corner distance is near
// zero, which callers must treat as a missing reading for the frame.
func EyeAspectRatio(p [6]Point) (float64, error) {
	vertA := dist(p[1], p[5])
	vertB := dist(p[2], p[4])
	horiz := dist(p[0], p[3])

	if horiz < minEyeSpan {
		return 0, ErrDegenerateEye
	}

	return (vertA + vertB) / (2.0 * horiz), nil
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
