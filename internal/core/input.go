package core

// Key is a semantic key event, abstracted from physical key presses.
// The platform translates terminal input to keys so the game never sees
// raw escape sequences.
type Key int

const (
	KeyNone     Key = iota
	KeyUp           // Up arrow
	KeyDown         // Down arrow
	KeyLeft         // Left arrow
	KeyRight        // Right arrow
	KeyEscape       // Esc - leave from the end screen
	KeyRestart      // r - new session from the end screen
	KeyHardQuit     // Ctrl+Q, Ctrl+C - abort immediately
	KeyOther        // any key without a binding
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeyRestart:
		return "Restart"
	case KeyHardQuit:
		return "HardQuit"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// IsArrow reports whether the key is one of the four arrows.
func (k Key) IsArrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}
