package player

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors for the player package.
var (
	// ErrNotConnected indicates the sink has no live connection.
	ErrNotConnected = errors.New("player: not connected")

	// ErrUnmappedCommand indicates the vocabulary carries no word for
	// the command.
	ErrUnmappedCommand = errors.New("player: command not in vocabulary")
)

// Sink forwards commands to a downstream player. Implementations own
// their transport; the pipeline only ever hands them debounced,
// edge-triggered commands.
type Sink interface {
	// Send forwards one command.
	Send(ctx context.Context, cmd Command) error

	// Close releases transport resources.
	Close() error
}

// LogSink logs commands instead of delivering them. Useful when tuning
// thresholds against a trace without a player attached.
type LogSink struct {
	logger *slog.Logger
	vocab  Vocabulary
}

// NewLogSink creates a sink that writes command words to the logger.
func NewLogSink(logger *slog.Logger, vocab Vocabulary) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	if vocab == nil {
		vocab = VideoVocabulary()
	}
	return &LogSink{logger: logger, vocab: vocab}
}

// Send logs the command's wire word.
func (s *LogSink) Send(_ context.Context, cmd Command) error {
	word, ok := s.vocab.Word(cmd)
	if !ok {
		return ErrUnmappedCommand
	}
	s.logger.Info("player command", "command", word)
	return nil
}

// Close is a no-op.
func (s *LogSink) Close() error {
	return nil
}

// Ensure LogSink implements Sink.
var _ Sink = (*LogSink)(nil)
