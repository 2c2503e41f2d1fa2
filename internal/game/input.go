package game

// Key is a logical key the modes react to. Several physical keys may map
// to one logical key (W and Up both steer forward).
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyStrafe // shift
	KeyBrake  // ctrl
	KeyPause  // F1
	KeySearch // F6
	KeyMinimap
	KeyPlanet // P: autopilot to the orbited planet
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyOther
)

// DigitKey returns the key for digit n (0-9).
func DigitKey(n int) Key {
	if n < 0 || n > 9 {
		return KeyNone
	}
	return Key0 + Key(n)
}

// KeyName returns a label for a key.
func KeyName(k Key) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	}
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
	case KeyStrafe:
		return "Shift"
	case KeyBrake:
		return "Ctrl"
	case KeyPause:
		return "F1"
	case KeySearch:
		return "F6"
	case KeyMinimap:
		return "M"
	case KeyPlanet:
		return "P"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyTab:
		return "Tab"
	default:
		return "Other"
	}
}

// Input reports which keys are held this tick.
type Input interface {
	Held(k Key) bool
}

// Event is one discrete key press, or one typed character when Key is
// KeyNone.
type Event struct {
	Key  Key
	Text rune
}

// KeyEvent returns a key press event.
func KeyEvent(k Key) Event { return Event{Key: k} }

// TextEvent returns a typed character event.
func TextEvent(r rune) Event { return Event{Text: r} }

// IsText reports whether the event carries a typed character.
func (ev Event) IsText() bool { return ev.Key == KeyNone && ev.Text != 0 }

// KeySet is an Input backed by a set of held keys.
type KeySet map[Key]bool

// Held implements Input.
func (s KeySet) Held(k Key) bool { return s[k] }
