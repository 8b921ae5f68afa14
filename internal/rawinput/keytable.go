package rawinput

import "github.com/vovakirdan/tui-pong/internal/platform"

// nativeKeys maps every native key to its portable code.
var nativeKeys = [...]KeyCode{
	platform.KeyAbsent:           KeyNone,
	platform.Key1:                Key1,
	platform.Key2:                Key2,
	platform.Key3:                Key3,
	platform.Key4:                Key4,
	platform.Key5:                Key5,
	platform.Key6:                Key6,
	platform.Key7:                Key7,
	platform.Key8:                Key8,
	platform.Key9:                Key9,
	platform.Key0:                Key0,
	platform.KeyA:                KeyA,
	platform.KeyB:                KeyB,
	platform.KeyC:                KeyC,
	platform.KeyD:                KeyD,
	platform.KeyE:                KeyE,
	platform.KeyF:                KeyF,
	platform.KeyG:                KeyG,
	platform.KeyH:                KeyH,
	platform.KeyI:                KeyI,
	platform.KeyJ:                KeyJ,
	platform.KeyK:                KeyK,
	platform.KeyL:                KeyL,
	platform.KeyM:                KeyM,
	platform.KeyN:                KeyN,
	platform.KeyO:                KeyO,
	platform.KeyP:                KeyP,
	platform.KeyQ:                KeyQ,
	platform.KeyR:                KeyR,
	platform.KeyS:                KeyS,
	platform.KeyT:                KeyT,
	platform.KeyU:                KeyU,
	platform.KeyV:                KeyV,
	platform.KeyW:                KeyW,
	platform.KeyX:                KeyX,
	platform.KeyY:                KeyY,
	platform.KeyZ:                KeyZ,
	platform.KeyEscape:           KeyEscape,
	platform.KeyF1:               KeyF1,
	platform.KeyF2:               KeyF2,
	platform.KeyF3:               KeyF3,
	platform.KeyF4:               KeyF4,
	platform.KeyF5:               KeyF5,
	platform.KeyF6:               KeyF6,
	platform.KeyF7:               KeyF7,
	platform.KeyF8:               KeyF8,
	platform.KeyF9:               KeyF9,
	platform.KeyF10:              KeyF10,
	platform.KeyF11:              KeyF11,
	platform.KeyF12:              KeyF12,
	platform.KeyF13:              KeyF13,
	platform.KeyF14:              KeyF14,
	platform.KeyF15:              KeyF15,
	platform.KeySnapshot:         KeySnapshot,
	platform.KeyScroll:           KeyScroll,
	platform.KeyPause:            KeyPause,
	platform.KeyInsert:           KeyInsert,
	platform.KeyHome:             KeyHome,
	platform.KeyDelete:           KeyDelete,
	platform.KeyEnd:              KeyEnd,
	platform.KeyPageDown:         KeyPageDown,
	platform.KeyPageUp:           KeyPageUp,
	platform.KeyLeft:             KeyLeft,
	platform.KeyUp:               KeyUp,
	platform.KeyRight:            KeyRight,
	platform.KeyDown:             KeyDown,
	platform.KeyBack:             KeyBack,
	platform.KeyReturn:           KeyReturn,
	platform.KeySpace:            KeySpace,
	platform.KeyCompose:          KeyCompose,
	platform.KeyNumlock:          KeyNumlock,
	platform.KeyNumpad0:          KeyNumpad0,
	platform.KeyNumpad1:          KeyNumpad1,
	platform.KeyNumpad2:          KeyNumpad2,
	platform.KeyNumpad3:          KeyNumpad3,
	platform.KeyNumpad4:          KeyNumpad4,
	platform.KeyNumpad5:          KeyNumpad5,
	platform.KeyNumpad6:          KeyNumpad6,
	platform.KeyNumpad7:          KeyNumpad7,
	platform.KeyNumpad8:          KeyNumpad8,
	platform.KeyNumpad9:          KeyNumpad9,
	platform.KeyAbntC1:           KeyAbntC1,
	platform.KeyAbntC2:           KeyAbntC2,
	platform.KeyAdd:              KeyAdd,
	platform.KeyApostrophe:       KeyApostrophe,
	platform.KeyApps:             KeyApps,
	platform.KeyAt:               KeyAt,
	platform.KeyAx:               KeyAx,
	platform.KeyBackslash:        KeyBackslash,
	platform.KeyCalculator:       KeyCalculator,
	platform.KeyCapital:          KeyCapital,
	platform.KeyColon:            KeyColon,
	platform.KeyComma:            KeyComma,
	platform.KeyConvert:          KeyConvert,
	platform.KeyDecimal:          KeyDecimal,
	platform.KeyDivide:           KeyDivide,
	platform.KeyEquals:           KeyEquals,
	platform.KeyGrave:            KeyGrave,
	platform.KeyKana:             KeyKana,
	platform.KeyKanji:            KeyKanji,
	platform.KeyLAlt:             KeyLAlt,
	platform.KeyLBracket:         KeyLBracket,
	platform.KeyLControl:         KeyLControl,
	platform.KeyLMenu:            KeyLMenu,
	platform.KeyLShift:           KeyLShift,
	platform.KeyLWin:             KeyLWin,
	platform.KeyMail:             KeyMail,
	platform.KeyMediaSelect:      KeyMediaSelect,
	platform.KeyMediaStop:        KeyMediaStop,
	platform.KeyMinus:            KeyMinus,
	platform.KeyMultiply:         KeyMultiply,
	platform.KeyMute:             KeyMute,
	platform.KeyMyComputer:       KeyMyComputer,
	platform.KeyNavigateForward:  KeyNavigateForward,
	platform.KeyNavigateBackward: KeyNavigateBackward,
	platform.KeyNextTrack:        KeyNextTrack,
	platform.KeyNoConvert:        KeyNoConvert,
	platform.KeyNumpadComma:      KeyNumpadComma,
	platform.KeyNumpadEnter:      KeyNumpadEnter,
	platform.KeyNumpadEquals:     KeyNumpadEquals,
	platform.KeyOEM102:           KeyOEM102,
	platform.KeyPeriod:           KeyPeriod,
	platform.KeyPlayPause:        KeyPlayPause,
	platform.KeyPower:            KeyPower,
	platform.KeyPrevTrack:        KeyPrevTrack,
	platform.KeyRAlt:             KeyRAlt,
	platform.KeyRBracket:         KeyRBracket,
	platform.KeyRControl:         KeyRControl,
	platform.KeyRMenu:            KeyRMenu,
	platform.KeyRShift:           KeyRShift,
	platform.KeyRWin:             KeyRWin,
	platform.KeySemicolon:        KeySemicolon,
	platform.KeySlash:            KeySlash,
	platform.KeySleep:            KeySleep,
	platform.KeyStop:             KeyStop,
	platform.KeySubtract:         KeySubtract,
	platform.KeySysrq:            KeySysrq,
	platform.KeyTab:              KeyTab,
	platform.KeyUnderline:        KeyUnderline,
	platform.KeyUnlabeled:        KeyUnlabeled,
	platform.KeyVolumeDown:       KeyVolumeDown,
	platform.KeyVolumeUp:         KeyVolumeUp,
	platform.KeyWake:             KeyWake,
	platform.KeyWebBack:          KeyWebBack,
	platform.KeyWebFavorites:     KeyWebFavorites,
	platform.KeyWebForward:       KeyWebForward,
	platform.KeyWebHome:          KeyWebHome,
	platform.KeyWebRefresh:       KeyWebRefresh,
	platform.KeyWebSearch:        KeyWebSearch,
	platform.KeyWebStop:          KeyWebStop,
	platform.KeyYen:              KeyYen,
}

// MapKeyCode converts a native key into a portable key code.
// Absent and out-of-range keys map to KeyNone.
func MapKeyCode(k platform.Key) KeyCode {
	if k < 0 || int(k) >= len(nativeKeys) {
		return KeyNone
	}
	return nativeKeys[k]
}
