package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic keyboard actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit           // q, Esc, Ctrl+C
	IntentToggleDebug    // d
	IntentToggleSettle   // s
	IntentToggleMute     // m
	IntentThicker        // + or =
	IntentThinner        // - or _
	IntentReset          // r
	IntentToggleBackdrop // b
)

var runeIntents = map[rune]IntentType{
	'q': IntentQuit,
	'd': IntentToggleDebug,
	's': IntentToggleSettle,
	'm': IntentToggleMute,
	'+': IntentThicker,
	'=': IntentThicker,
	'-': IntentThinner,
	'_': IntentThinner,
	'r': IntentReset,
	'b': IntentToggleBackdrop,
}

// KeyIntent maps a key event to its intent
func KeyIntent(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		return runeIntents[ev.Rune()]
	}
	return IntentNone
}

// String returns a human-readable intent name
func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "Quit"
	case IntentToggleDebug:
		return "ToggleDebug"
	case IntentToggleSettle:
		return "ToggleSettle"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentThicker:
		return "Thicker"
	case IntentThinner:
		return "Thinner"
	case IntentReset:
		return "Reset"
	case IntentToggleBackdrop:
		return "ToggleBackdrop"
	default:
		return "None"
	}
}
