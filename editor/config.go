package editor

import "log/slog"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	ShowStatus   bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when no binding is set.
	KeyMap KeyMap

	// OnChange is called after each key or click that changed the buffer.
	OnChange func(ChangeEvent)

	// Logger receives debug records for intents and changes. Nil discards.
	Logger *slog.Logger
}
