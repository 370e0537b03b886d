package editor

import "github.com/romycode/xx/buffer"

// ChangeEvent is passed to Config.OnChange after an effective buffer change.
type ChangeEvent struct {
	Version uint64
	Change  buffer.Change
	Pos     buffer.Pos

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Pos:     b.Pos(),
		Text:    b.Text(),
	}
	if ch, ok := b.LastChange(); ok {
		ev.Change = ch
	}
	return ev
}
