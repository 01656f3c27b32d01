// Package layout loads and queries a fixed-method keymap: a flat JSON
// table mapping a named key (plain, shifted, or numpad) and a
// modifier layer (Normal or AltGr) to the Bengali text it produces.
package layout

import (
	"encoding/json"
	"fmt"

	"github.com/bnkb-dev/bnsuggest/keycodes"
)

// Modifier selects which layer of the keymap a key resolves through.
type Modifier int

const (
	Normal Modifier = iota
	AltGr
)

func (m Modifier) String() string {
	if m == AltGr {
		return "AltGr"
	}
	return "Normal"
}

// FromBits derives a Modifier from the host-delivered modifier bitmask,
// matching original_source's From<Modifiers> for LayoutModifiers: Shift
// never changes which layer is selected, only AltGr does.
func FromBits(m keycodes.Modifier) Modifier {
	if keycodes.HasAltGr(m) {
		return AltGr
	}
	return Normal
}

// Type distinguishes a phonetic layout file from a fixed one, read from
// the layout file's "info.type" field.
type Type string

const (
	TypePhonetic Type = "phonetic"
	TypeFixed    Type = "fixed"
)

// layoutFile is the on-disk shape: an "info" block and a flat "layout"
// string-to-string map.
type layoutFile struct {
	Info struct {
		Name string `json:"name"`
		Type Type   `json:"type"`
	} `json:"info"`
	Layout map[string]string `json:"layout"`
}

// Layout is a parsed keymap ready for CharForKey lookups.
type Layout struct {
	name string
	typ  Type
	keys map[string]string
}

// Parse parses raw layout JSON (a Probhat.json-shaped file).
func Parse(raw []byte) (*Layout, error) {
	var lf layoutFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("layout: parsing layout file: %w", err)
	}
	if lf.Info.Type != TypePhonetic && lf.Info.Type != TypeFixed {
		return nil, fmt.Errorf("layout: unknown layout type %q", lf.Info.Type)
	}
	return &Layout{name: lf.Info.Name, typ: lf.Info.Type, keys: lf.Layout}, nil
}

// Name returns the layout's display name.
func (l *Layout) Name() string { return l.name }

// Type returns the layout's declared type.
func (l *Layout) Type() Type { return l.typ }

func (l *Layout) value(key string, mod Modifier) (string, bool) {
	v, ok := l.keys[fmt.Sprintf("Key_%s_%s", key, mod)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (l *Layout) numpadValue(key string, numpadEnabled bool) (string, bool) {
	if !numpadEnabled {
		return "", false
	}
	v, ok := l.keys[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// keyNames maps the alphanumeric/punctuation virtual key codes to the
// layout-file key name they resolve through, mirroring
// original_source's exhaustive match in LayoutParser::get_char_for_key.
var keyNames = map[keycodes.VC]string{
	keycodes.VC_0: "0", keycodes.VC_PAREN_RIGHT: "ParenRight",
	keycodes.VC_1: "1", keycodes.VC_EXCLAIM: "Exclaim",
	keycodes.VC_2: "2", keycodes.VC_AT: "At",
	keycodes.VC_3: "3", keycodes.VC_HASH: "Hash",
	keycodes.VC_4: "4", keycodes.VC_DOLLAR: "Dollar",
	keycodes.VC_5: "5", keycodes.VC_PERCENT: "Percent",
	keycodes.VC_6: "6", keycodes.VC_CIRCUM: "Circum",
	keycodes.VC_7: "7", keycodes.VC_AMPERSAND: "Ampersand",
	keycodes.VC_8: "8", keycodes.VC_ASTERISK: "Asterisk",
	keycodes.VC_9: "9", keycodes.VC_PAREN_LEFT: "ParenLeft",

	keycodes.VC_a: "a", keycodes.VC_b: "b", keycodes.VC_c: "c", keycodes.VC_d: "d",
	keycodes.VC_e: "e", keycodes.VC_f: "f", keycodes.VC_g: "g", keycodes.VC_h: "h",
	keycodes.VC_i: "i", keycodes.VC_j: "j", keycodes.VC_k: "k", keycodes.VC_l: "l",
	keycodes.VC_m: "m", keycodes.VC_n: "n", keycodes.VC_o: "o", keycodes.VC_p: "p",
	keycodes.VC_q: "q", keycodes.VC_r: "r", keycodes.VC_s: "s", keycodes.VC_t: "t",
	keycodes.VC_u: "u", keycodes.VC_v: "v", keycodes.VC_w: "w", keycodes.VC_x: "x",
	keycodes.VC_y: "y", keycodes.VC_z: "z",

	keycodes.VC_A: "A", keycodes.VC_B: "B", keycodes.VC_C: "C", keycodes.VC_D: "D",
	keycodes.VC_E: "E", keycodes.VC_F: "F", keycodes.VC_G: "G", keycodes.VC_H: "H",
	keycodes.VC_I: "I", keycodes.VC_J: "J", keycodes.VC_K: "K", keycodes.VC_L: "L",
	keycodes.VC_M: "M", keycodes.VC_N: "N", keycodes.VC_O: "O", keycodes.VC_P: "P",
	keycodes.VC_Q: "Q", keycodes.VC_R: "R", keycodes.VC_S: "S", keycodes.VC_T: "T",
	keycodes.VC_U: "U", keycodes.VC_V: "V", keycodes.VC_W: "W", keycodes.VC_X: "X",
	keycodes.VC_Y: "Y", keycodes.VC_Z: "Z",

	keycodes.VC_GRAVE: "Grave", keycodes.VC_TILDE: "Tilde",
	keycodes.VC_MINUS: "Minus", keycodes.VC_UNDERSCORE: "UnderScore",
	keycodes.VC_EQUALS: "Equals", keycodes.VC_PLUS: "Plus",
	keycodes.VC_BRACKET_LEFT: "BracketLeft", keycodes.VC_BRACE_LEFT: "BraceLeft",
	keycodes.VC_BRACKET_RIGHT: "BracketRight", keycodes.VC_BRACE_RIGHT: "BraceRight",
	keycodes.VC_BACK_SLASH: "BackSlash", keycodes.VC_BAR: "Bar",
	keycodes.VC_SEMICOLON: "Semicolon", keycodes.VC_COLON: "Colon",
	keycodes.VC_APOSTROPHE: "Apostrophe", keycodes.VC_QUOTE: "Quote",
	keycodes.VC_COMMA: "Comma", keycodes.VC_LESS: "Less",
	keycodes.VC_PERIOD: "Period", keycodes.VC_GREATER: "Greater",
	keycodes.VC_SLASH: "Slash", keycodes.VC_QUESTION: "Question",
}

// numpadKeyNames maps numpad virtual key codes directly to their
// layout-file key (no modifier layer, gated on numpadEnabled instead).
var numpadKeyNames = map[keycodes.VC]string{
	keycodes.VC_KP_0: "Num0", keycodes.VC_KP_1: "Num1", keycodes.VC_KP_2: "Num2",
	keycodes.VC_KP_3: "Num3", keycodes.VC_KP_4: "Num4", keycodes.VC_KP_5: "Num5",
	keycodes.VC_KP_6: "Num6", keycodes.VC_KP_7: "Num7", keycodes.VC_KP_8: "Num8",
	keycodes.VC_KP_9: "Num9", keycodes.VC_KP_DIVIDE: "NumDivide",
	keycodes.VC_KP_MULTIPLY: "NumMultiply", keycodes.VC_KP_SUBTRACT: "NumSubtract",
	keycodes.VC_KP_ADD: "NumAdd", keycodes.VC_KP_DECIMAL: "NumDecimal",
}

// CharForKey resolves the text key produces under mod, consulting the
// numpad table (gated on numpadEnabled) before the modifier-layered
// table.
func (l *Layout) CharForKey(key keycodes.VC, mod Modifier, numpadEnabled bool) (string, bool) {
	if name, ok := numpadKeyNames[key]; ok {
		return l.numpadValue(name, numpadEnabled)
	}
	name, ok := keyNames[key]
	if !ok {
		return "", false
	}
	return l.value(name, mod)
}
