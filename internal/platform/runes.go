package platform

import "unicode"

var punctuation = map[rune]Key{
	' ':  KeySpace,
	'\'': KeyApostrophe,
	'@':  KeyAt,
	'\\': KeyBackslash,
	':':  KeyColon,
	',':  KeyComma,
	'=':  KeyEquals,
	'`':  KeyGrave,
	'[':  KeyLBracket,
	'-':  KeyMinus,
	'*':  KeyMultiply,
	'+':  KeyAdd,
	'.':  KeyPeriod,
	']':  KeyRBracket,
	';':  KeySemicolon,
	'/':  KeySlash,
	'_':  KeyUnderline,
}

// KeyForRune returns the virtual key that types r on a US layout, or
// KeyAbsent. Letters map regardless of case.
func KeyForRune(r rune) Key {
	switch {
	case r >= '1' && r <= '9':
		return Key1 + Key(r-'1')
	case r == '0':
		return Key0
	}
	r = unicode.ToLower(r)
	if r >= 'a' && r <= 'z' {
		return KeyA + Key(r-'a')
	}
	if k, ok := punctuation[r]; ok {
		return k
	}
	return KeyAbsent
}
