package rawinput

// KeyCode is the portable key code carried by Key device events.
// Binding files name keys by KeyCode.String.
type KeyCode int

const (
	KeyNone KeyCode = iota

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeySnapshot
	KeyScroll
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBack
	KeyReturn
	KeySpace
	KeyCompose
	KeyNumlock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyAbntC1
	KeyAbntC2
	KeyAdd
	KeyApostrophe
	KeyApps
	KeyAt
	KeyAx
	KeyBackslash
	KeyCalculator
	KeyCapital
	KeyColon
	KeyComma
	KeyConvert
	KeyDecimal
	KeyDivide
	KeyEquals
	KeyGrave
	KeyKana
	KeyKanji
	KeyLAlt
	KeyLBracket
	KeyLControl
	KeyLMenu
	KeyLShift
	KeyLWin
	KeyMail
	KeyMediaSelect
	KeyMediaStop
	KeyMinus
	KeyMultiply
	KeyMute
	KeyMyComputer
	KeyNavigateForward
	KeyNavigateBackward
	KeyNextTrack
	KeyNoConvert
	KeyNumpadComma
	KeyNumpadEnter
	KeyNumpadEquals
	KeyOEM102
	KeyPeriod
	KeyPlayPause
	KeyPower
	KeyPrevTrack
	KeyRAlt
	KeyRBracket
	KeyRControl
	KeyRMenu
	KeyRShift
	KeyRWin
	KeySemicolon
	KeySlash
	KeySleep
	KeyStop
	KeySubtract
	KeySysrq
	KeyTab
	KeyUnderline
	KeyUnlabeled
	KeyVolumeDown
	KeyVolumeUp
	KeyWake
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop
	KeyYen
)

var keyNames = [...]string{
	KeyNone:             "None",
	Key1:                "1",
	Key2:                "2",
	Key3:                "3",
	Key4:                "4",
	Key5:                "5",
	Key6:                "6",
	Key7:                "7",
	Key8:                "8",
	Key9:                "9",
	Key0:                "0",
	KeyA:                "A",
	KeyB:                "B",
	KeyC:                "C",
	KeyD:                "D",
	KeyE:                "E",
	KeyF:                "F",
	KeyG:                "G",
	KeyH:                "H",
	KeyI:                "I",
	KeyJ:                "J",
	KeyK:                "K",
	KeyL:                "L",
	KeyM:                "M",
	KeyN:                "N",
	KeyO:                "O",
	KeyP:                "P",
	KeyQ:                "Q",
	KeyR:                "R",
	KeyS:                "S",
	KeyT:                "T",
	KeyU:                "U",
	KeyV:                "V",
	KeyW:                "W",
	KeyX:                "X",
	KeyY:                "Y",
	KeyZ:                "Z",
	KeyEscape:           "Escape",
	KeyF1:               "F1",
	KeyF2:               "F2",
	KeyF3:               "F3",
	KeyF4:               "F4",
	KeyF5:               "F5",
	KeyF6:               "F6",
	KeyF7:               "F7",
	KeyF8:               "F8",
	KeyF9:               "F9",
	KeyF10:              "F10",
	KeyF11:              "F11",
	KeyF12:              "F12",
	KeyF13:              "F13",
	KeyF14:              "F14",
	KeyF15:              "F15",
	KeySnapshot:         "Snapshot",
	KeyScroll:           "Scroll",
	KeyPause:            "Pause",
	KeyInsert:           "Insert",
	KeyHome:             "Home",
	KeyDelete:           "Delete",
	KeyEnd:              "End",
	KeyPageDown:         "PageDown",
	KeyPageUp:           "PageUp",
	KeyLeft:             "Left",
	KeyUp:               "Up",
	KeyRight:            "Right",
	KeyDown:             "Down",
	KeyBack:             "Back",
	KeyReturn:           "Return",
	KeySpace:            "Space",
	KeyCompose:          "Compose",
	KeyNumlock:          "Numlock",
	KeyNumpad0:          "Numpad0",
	KeyNumpad1:          "Numpad1",
	KeyNumpad2:          "Numpad2",
	KeyNumpad3:          "Numpad3",
	KeyNumpad4:          "Numpad4",
	KeyNumpad5:          "Numpad5",
	KeyNumpad6:          "Numpad6",
	KeyNumpad7:          "Numpad7",
	KeyNumpad8:          "Numpad8",
	KeyNumpad9:          "Numpad9",
	KeyAbntC1:           "AbntC1",
	KeyAbntC2:           "AbntC2",
	KeyAdd:              "Add",
	KeyApostrophe:       "Apostrophe",
	KeyApps:             "Apps",
	KeyAt:               "At",
	KeyAx:               "Ax",
	KeyBackslash:        "Backslash",
	KeyCalculator:       "Calculator",
	KeyCapital:          "Capital",
	KeyColon:            "Colon",
	KeyComma:            "Comma",
	KeyConvert:          "Convert",
	KeyDecimal:          "Decimal",
	KeyDivide:           "Divide",
	KeyEquals:           "Equals",
	KeyGrave:            "Grave",
	KeyKana:             "Kana",
	KeyKanji:            "Kanji",
	KeyLAlt:             "LAlt",
	KeyLBracket:         "LBracket",
	KeyLControl:         "LControl",
	KeyLMenu:            "LMenu",
	KeyLShift:           "LShift",
	KeyLWin:             "LWin",
	KeyMail:             "Mail",
	KeyMediaSelect:      "MediaSelect",
	KeyMediaStop:        "MediaStop",
	KeyMinus:            "Minus",
	KeyMultiply:         "Multiply",
	KeyMute:             "Mute",
	KeyMyComputer:       "MyComputer",
	KeyNavigateForward:  "NavigateForward",
	KeyNavigateBackward: "NavigateBackward",
	KeyNextTrack:        "NextTrack",
	KeyNoConvert:        "NoConvert",
	KeyNumpadComma:      "NumpadComma",
	KeyNumpadEnter:      "NumpadEnter",
	KeyNumpadEquals:     "NumpadEquals",
	KeyOEM102:           "OEM102",
	KeyPeriod:           "Period",
	KeyPlayPause:        "PlayPause",
	KeyPower:            "Power",
	KeyPrevTrack:        "PrevTrack",
	KeyRAlt:             "RAlt",
	KeyRBracket:         "RBracket",
	KeyRControl:         "RControl",
	KeyRMenu:            "RMenu",
	KeyRShift:           "RShift",
	KeyRWin:             "RWin",
	KeySemicolon:        "Semicolon",
	KeySlash:            "Slash",
	KeySleep:            "Sleep",
	KeyStop:             "Stop",
	KeySubtract:         "Subtract",
	KeySysrq:            "Sysrq",
	KeyTab:              "Tab",
	KeyUnderline:        "Underline",
	KeyUnlabeled:        "Unlabeled",
	KeyVolumeDown:       "VolumeDown",
	KeyVolumeUp:         "VolumeUp",
	KeyWake:             "Wake",
	KeyWebBack:          "WebBack",
	KeyWebFavorites:     "WebFavorites",
	KeyWebForward:       "WebForward",
	KeyWebHome:          "WebHome",
	KeyWebRefresh:       "WebRefresh",
	KeyWebSearch:        "WebSearch",
	KeyWebStop:          "WebStop",
	KeyYen:              "Yen",
}

// String returns the binding-file name of the key.
func (k KeyCode) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "Unknown"
	}
	return keyNames[k]
}

// ParseKeyCode resolves a binding-file key name. Names are case-sensitive.
func ParseKeyCode(name string) (KeyCode, bool) {
	for i, n := range keyNames {
		if n == name {
			return KeyCode(i), true
		}
	}
	return KeyNone, false
}
