package player

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// remoteHandshakeTimeout bounds the websocket dial.
	remoteHandshakeTimeout = 10 * time.Second

	// remoteWriteWait bounds each command write.
	remoteWriteWait = 5 * time.Second
)

// remoteMessage is the wire envelope a player remote receives.
type remoteMessage struct {
	Command string `json:"command"`
	At      string `json:"at"`
}

// RemoteSink delivers commands to an external media player's
// remote-control websocket as JSON messages. The player itself is an
// external collaborator; this is only the command wire.
type RemoteSink struct {
	url   string
	vocab Vocabulary

	mu   sync.Mutex
	conn *websocket.Conn
}

// DialRemote connects to a player remote at the given websocket URL.
func DialRemote(url string, vocab Vocabulary) (*RemoteSink, error) {
	if vocab == nil {
		vocab = VideoVocabulary()
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: remoteHandshakeTimeout,
	}

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial player remote: %w", err)
	}

	return &RemoteSink{
		url:   url,
		vocab: vocab,
		conn:  conn,
	}, nil
}

// Send forwards one command as a JSON message. Context cancellation is
// honored up to the write deadline.
func (s *RemoteSink) Send(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	word, ok := s.vocab.Word(cmd)
	if !ok {
		return ErrUnmappedCommand
	}

	payload, err := json.Marshal(remoteMessage{
		Command: word,
		At:      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("encode command: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrNotConnected
	}

	deadline := time.Now().Add(remoteWriteWait)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	s.conn.SetWriteDeadline(deadline)

	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("send %q to player remote: %w", word, err)
	}
	return nil
}

// Close sends a close frame and tears down the connection.
func (s *RemoteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	s.conn.SetWriteDeadline(time.Now().Add(remoteWriteWait))
	s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	err := s.conn.Close()
	s.conn = nil
	return err
}

// Ensure RemoteSink implements Sink.
var _ Sink = (*RemoteSink)(nil)
