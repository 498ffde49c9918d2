// Package page wires the document's controls to the joke timeline, the
// backdrop, the themes and the share card.
package page

// Action is what a key press asks the page to do.
type Action int

const (
	NoAction Action = iota
	NextJoke
	ShareJoke
	ToggleSpeech
	Fullscreen
	ClosePanes
	ToggleStats
)

// KeyMap maps key codes to page actions.
var KeyMap = map[int]Action{
	13:  NextJoke,     // Enter
	32:  NextJoke,     // Space
	74:  NextJoke,     // J
	83:  ShareJoke,    // S
	84:  ToggleSpeech, // T
	70:  Fullscreen,   // F
	27:  ClosePanes,   // Esc
	121: ToggleStats,  // F10
}

// TranslateKeyCode returns the action bound to keyCode.
func TranslateKeyCode(keyCode int) Action {
	return KeyMap[keyCode]
}

// Accepts reports whether a page action should run while focus is on a
// form control. Only Esc and F10 get through, so typing and slider keys
// keep their usual meaning.
func Accepts(a Action, inControl bool) bool {
	if a == NoAction {
		return false
	}
	if !inControl {
		return true
	}
	return a == ClosePanes || a == ToggleStats
}
