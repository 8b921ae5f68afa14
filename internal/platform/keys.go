package platform

// Key is the native virtual key code reported by the host toolkit.
type Key int

const (
	KeyAbsent Key = iota // the toolkit could not name the key

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

	keyCount // number of defined keys, not a key
)

// KeyCount returns the number of defined keys including KeyAbsent.
func KeyCount() int {
	return int(keyCount)
}
