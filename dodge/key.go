package dodge

// Key is a logical input key. Everything the game does not track maps to
// KeyOther, which still counts as "any key".
type Key int

const (
	KeyOther Key = iota
	KeyModifier
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyModifier:
		return "Shift"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	default:
		return "Other"
	}
}

// KeyState is the current pressed state of the tracked keys. Only the
// latest state matters, event order within a frame is not kept.
type KeyState struct {
	Modifier bool
	Up       bool
	Down     bool
	Left     bool
	Right    bool
}

func (s *KeyState) Set(k Key, pressed bool) {
	switch k {
	case KeyModifier:
		s.Modifier = pressed
	case KeyUp:
		s.Up = pressed
	case KeyDown:
		s.Down = pressed
	case KeyLeft:
		s.Left = pressed
	case KeyRight:
		s.Right = pressed
	}
}
