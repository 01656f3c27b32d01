// Package keycodes defines the fixed numeric virtual key codes and the
// modifier bitmask the host delivers on every keystroke. Values are
// stable across versions; this table is the canonical source.
package keycodes

// VC is a virtual key code delivered by the host keyboard hook.
type VC = uint16

// Alphanumeric zone.
const (
	VC_GRAVE VC = 0x0029
	VC_TILDE VC = 0x0001

	VC_1 VC = 0x0002
	VC_2 VC = 0x0003
	VC_3 VC = 0x0004
	VC_4 VC = 0x0005
	VC_5 VC = 0x0006
	VC_6 VC = 0x0007
	VC_7 VC = 0x0008
	VC_8 VC = 0x0009
	VC_9 VC = 0x000A
	VC_0 VC = 0x000B

	VC_EXCLAIM    VC = 0x003B
	VC_AT         VC = 0x003C
	VC_HASH       VC = 0x003D
	VC_DOLLAR     VC = 0x003E
	VC_PERCENT    VC = 0x003F
	VC_CIRCUM     VC = 0x0040
	VC_AMPERSAND  VC = 0x0041
	VC_ASTERISK   VC = 0x0042
	VC_PAREN_LEFT VC = 0x0043
	VC_PAREN_RIGHT VC = 0x0044
	VC_UNDERSCORE VC = 0x0057
	VC_PLUS       VC = 0x0058

	VC_MINUS    VC = 0x000C
	VC_EQUALS   VC = 0x000D
	VC_BACKSPACE VC = 0x000E

	VC_TAB VC = 0x000F

	VC_a VC = 0xA096
	VC_b VC = 0xA097
	VC_c VC = 0xA098
	VC_d VC = 0xA099
	VC_e VC = 0xA09A
	VC_f VC = 0xA09B
	VC_g VC = 0xA09C
	VC_h VC = 0xA09D
	VC_i VC = 0xA09E
	VC_j VC = 0xA09F
	VC_k VC = 0xA0A0
	VC_l VC = 0xA0A1
	VC_m VC = 0xA0A2
	VC_n VC = 0xA0A3
	VC_o VC = 0xA0A4
	VC_p VC = 0xA0A5
	VC_q VC = 0xA0A6
	VC_r VC = 0xA0A7
	VC_s VC = 0xA0A8
	VC_t VC = 0xA0A9
	VC_u VC = 0xA0AA
	VC_v VC = 0xA0AB
	VC_w VC = 0xA0AC
	VC_x VC = 0xA0AD
	VC_y VC = 0xA0AE
	VC_z VC = 0xA0AF

	VC_A VC = 0xA0B4
	VC_B VC = 0xA0B5
	VC_C VC = 0xA0B6
	VC_D VC = 0xA0B7
	VC_E VC = 0xA0B8
	VC_F VC = 0xA0B9
	VC_G VC = 0xA0BA
	VC_H VC = 0xA0BB
	VC_I VC = 0xA0BC
	VC_J VC = 0xA0BD
	VC_K VC = 0xA0BE
	VC_L VC = 0xA0BF
	VC_M VC = 0xA0C0
	VC_N VC = 0xA0C1
	VC_O VC = 0xA0C2
	VC_P VC = 0xA0C3
	VC_Q VC = 0xA0C4
	VC_R VC = 0xA0C5
	VC_S VC = 0xA0C6
	VC_T VC = 0xA0C7
	VC_U VC = 0xA0C8
	VC_V VC = 0xA0C9
	VC_W VC = 0xA0CA
	VC_X VC = 0xA0CB
	VC_Y VC = 0xA0CC
	VC_Z VC = 0xA0CD

	VC_BRACKET_LEFT  VC = 0x001A
	VC_BRACKET_RIGHT VC = 0x001B
	VC_BACK_SLASH    VC = 0x002B

	VC_BRACE_LEFT  VC = 0x005B
	VC_BRACE_RIGHT VC = 0x005C
	VC_BAR         VC = 0x005D

	VC_SEMICOLON  VC = 0x0027
	VC_APOSTROPHE VC = 0x0028
	VC_ENTER      VC = 0x001C

	VC_COMMA  VC = 0x0033
	VC_PERIOD VC = 0x0034
	VC_SLASH  VC = 0x0035

	VC_COLON    VC = 0x0063
	VC_QUOTE    VC = 0x0064
	VC_LESS     VC = 0x0065
	VC_GREATER  VC = 0x0066
	VC_QUESTION VC = 0x0067

	VC_SPACE VC = 0x0039

	VC_UNKNOWN VC = 0x0046
)

// Edit key zone.
const (
	VC_INSERT    VC = 0x0E52
	VC_DELETE    VC = 0x0E53
	VC_HOME      VC = 0x0E47
	VC_END       VC = 0x0E4F
	VC_PAGE_UP   VC = 0x0E49
	VC_PAGE_DOWN VC = 0x0E51
)

// Cursor key zone.
const (
	VC_UP    VC = 0xE048
	VC_LEFT  VC = 0xE04B
	VC_RIGHT VC = 0xE04D
	VC_DOWN  VC = 0xE050
)

// Numeric (numpad) zone.
const (
	VC_KP_DIVIDE   VC = 0x0E35
	VC_KP_MULTIPLY VC = 0x0037
	VC_KP_SUBTRACT VC = 0x004A
	VC_KP_EQUALS   VC = 0x0E0D
	VC_KP_ADD      VC = 0x004E
	VC_KP_ENTER    VC = 0x0E1C
	VC_KP_DECIMAL  VC = 0x0053

	VC_KP_1 VC = 0x004F
	VC_KP_2 VC = 0x0050
	VC_KP_3 VC = 0x0051
	VC_KP_4 VC = 0x004B
	VC_KP_5 VC = 0x004C
	VC_KP_6 VC = 0x004D
	VC_KP_7 VC = 0x0047
	VC_KP_8 VC = 0x0048
	VC_KP_9 VC = 0x0049
	VC_KP_0 VC = 0x0052
)

const (
	VC_SHIFT   VC = 0x002A
	VC_CONTROL VC = 0x001D
	VC_ALT     VC = 0x0038
)

// Modifier is the bitmask the host passes alongside each key code.
// Only two bits are named; the rest are reserved for host use.
type Modifier = uint8

const (
	// Shift is set when the Shift key is held.
	Shift Modifier = 1 << 0
	// AltGr is set when the right-Alt (AltGr) layer is active.
	AltGr Modifier = 1 << 1
)

// HasShift reports whether the Shift bit is set in m.
func HasShift(m Modifier) bool { return m&Shift != 0 }

// HasAltGr reports whether the AltGr bit is set in m.
func HasAltGr(m Modifier) bool { return m&AltGr != 0 }

// asciiChars maps every alphanumeric/punctuation VC to the literal ASCII
// character it types — used by the phonetic method, which appends raw
// Latin text to its buffer rather than consulting a layout keymap. Shift
// is already encoded in which constant fires (VC_a vs VC_A), matching
// original_source's keycode_to_char.
var asciiChars = map[VC]rune{
	VC_GRAVE: '`', VC_TILDE: '~',
	VC_0: '0', VC_PAREN_RIGHT: ')',
	VC_1: '1', VC_EXCLAIM: '!',
	VC_2: '2', VC_AT: '@',
	VC_3: '3', VC_HASH: '#',
	VC_4: '4', VC_DOLLAR: '$',
	VC_5: '5', VC_PERCENT: '%',
	VC_6: '6', VC_CIRCUM: '^',
	VC_7: '7', VC_AMPERSAND: '&',
	VC_8: '8', VC_ASTERISK: '*',
	VC_9: '9', VC_PAREN_LEFT: '(',
	VC_MINUS: '-', VC_UNDERSCORE: '_',
	VC_EQUALS: '=', VC_PLUS: '+',

	VC_a: 'a', VC_b: 'b', VC_c: 'c', VC_d: 'd', VC_e: 'e', VC_f: 'f',
	VC_g: 'g', VC_h: 'h', VC_i: 'i', VC_j: 'j', VC_k: 'k', VC_l: 'l',
	VC_m: 'm', VC_n: 'n', VC_o: 'o', VC_p: 'p', VC_q: 'q', VC_r: 'r',
	VC_s: 's', VC_t: 't', VC_u: 'u', VC_v: 'v', VC_w: 'w', VC_x: 'x',
	VC_y: 'y', VC_z: 'z',

	VC_A: 'A', VC_B: 'B', VC_C: 'C', VC_D: 'D', VC_E: 'E', VC_F: 'F',
	VC_G: 'G', VC_H: 'H', VC_I: 'I', VC_J: 'J', VC_K: 'K', VC_L: 'L',
	VC_M: 'M', VC_N: 'N', VC_O: 'O', VC_P: 'P', VC_Q: 'Q', VC_R: 'R',
	VC_S: 'S', VC_T: 'T', VC_U: 'U', VC_V: 'V', VC_W: 'W', VC_X: 'X',
	VC_Y: 'Y', VC_Z: 'Z',

	VC_BRACKET_LEFT: '[', VC_BRACE_LEFT: '{',
	VC_BRACKET_RIGHT: ']', VC_BRACE_RIGHT: '}',
	VC_BACK_SLASH: '\\', VC_BAR: '|',
	VC_SEMICOLON: ';', VC_COLON: ':',
	VC_APOSTROPHE: '\'', VC_QUOTE: '"',
	VC_COMMA: ',', VC_LESS: '<',
	VC_PERIOD: '.', VC_GREATER: '>',
	VC_SLASH: '/', VC_QUESTION: '?',
	VC_SPACE: ' ',
}

// ToASCII resolves the literal ASCII character key types, and false for
// keys with no ASCII representation (function keys, arrows, etc.).
func ToASCII(key VC) (rune, bool) {
	r, ok := asciiChars[key]
	return r, ok
}

var runeToKey = func() map[rune]VC {
	m := make(map[rune]VC, len(asciiChars))
	for k, v := range asciiChars {
		m[v] = k
	}
	return m
}()

// FromASCII resolves the VC a literal ASCII character types under this
// table, for hosts (or test harnesses) that start from typed text
// rather than raw key events.
func FromASCII(r rune) (VC, bool) {
	k, ok := runeToKey[r]
	return k, ok
}
