// Package player defines the command vocabulary emitted by the
// attention pipeline and the sink boundary to an external media player.
// Playback itself (decoding, transport, UI) lives outside this module.
package player

// Command is a discrete control command for the downstream player.
type Command int

const (
	// CommandNone means no command; most frames emit nothing.
	CommandNone Command = iota
	// CommandPlay resumes playback.
	CommandPlay
	// CommandPause halts playback.
	CommandPause
)

// String returns the lowercase command name.
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	default:
		return "none"
	}
}

// Vocabulary maps commands onto the wire words a particular downstream
// consumer understands. The decision layer stays identical whether it
// drives a video player or a document scroller; only the mapping
// changes.
type Vocabulary map[Command]string

// VideoVocabulary returns the mapping for media player transports.
func VideoVocabulary() Vocabulary {
	return Vocabulary{
		CommandPlay:  "play",
		CommandPause: "pause",
	}
}

// DocumentVocabulary returns the mapping for auto-scrolling readers.
func DocumentVocabulary() Vocabulary {
	return Vocabulary{
		CommandPlay:  "scroll_resume",
		CommandPause: "scroll_stop",
	}
}

// Word resolves a command to its wire word. The second return is false
// for commands the vocabulary does not carry.
func (v Vocabulary) Word(c Command) (string, bool) {
	word, ok := v[c]
	return word, ok
}
