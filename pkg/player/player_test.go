package player

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CommandNone, "none"},
		{CommandPlay, "play"},
		{CommandPause, "pause"},
		{Command(42), "none"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", int(tt.cmd), got, tt.want)
		}
	}
}

func TestVocabulary_Word(t *testing.T) {
	tests := []struct {
		name  string
		vocab Vocabulary
		cmd   Command
		want  string
		ok    bool
	}{
		{name: "video play", vocab: VideoVocabulary(), cmd: CommandPlay, want: "play", ok: true},
		{name: "video pause", vocab: VideoVocabulary(), cmd: CommandPause, want: "pause", ok: true},
		{name: "document play", vocab: DocumentVocabulary(), cmd: CommandPlay, want: "scroll_resume", ok: true},
		{name: "document pause", vocab: DocumentVocabulary(), cmd: CommandPause, want: "scroll_stop", ok: true},
		{name: "none is unmapped", vocab: VideoVocabulary(), cmd: CommandNone, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.vocab.Word(tt.cmd)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLogSink_Send(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sink := NewLogSink(logger, VideoVocabulary())
	defer sink.Close()

	if err := sink.Send(context.Background(), CommandPlay); err != nil {
		t.Errorf("Send: %v", err)
	}

	// Commands outside the vocabulary are a caller bug, surfaced.
	err := sink.Send(context.Background(), CommandNone)
	if !errors.Is(err, ErrUnmappedCommand) {
		t.Errorf("got %v, want %v", err, ErrUnmappedCommand)
	}
}

func TestMockSink_Records(t *testing.T) {
	sink := NewMockSink()
	ctx := context.Background()

	sink.Send(ctx, CommandPlay)
	sink.Send(ctx, CommandPause)

	got := sink.Commands()
	if len(got) != 2 || got[0] != CommandPlay || got[1] != CommandPause {
		t.Errorf("got %v, want [play pause]", got)
	}

	// The returned slice is a copy.
	got[0] = CommandPause
	if sink.Commands()[0] != CommandPlay {
		t.Error("Commands exposed internal state")
	}

	if sink.Closed() {
		t.Error("closed before Close")
	}
	sink.Close()
	if !sink.Closed() {
		t.Error("not closed after Close")
	}
}

func TestMockSink_SendErr(t *testing.T) {
	sink := NewMockSink()
	sink.SendErr = ErrNotConnected

	if err := sink.Send(context.Background(), CommandPlay); !errors.Is(err, ErrNotConnected) {
		t.Errorf("got %v, want %v", err, ErrNotConnected)
	}
	if got := sink.Commands(); len(got) != 0 {
		t.Errorf("failed send recorded: %v", got)
	}
}
