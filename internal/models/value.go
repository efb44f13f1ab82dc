// Package models defines the canonical record shapes shared by the
// cleaning pipelines.
package models

// Sentinel is the wire marker for a missing value. It is the only
// recognized "no value" signal in inputs, intermediate files, and
// outputs.
const Sentinel = "N/A"

// nullLike lists the spellings that decode to a missing value.
var nullLike = map[string]bool{
	Sentinel: true,
	"n/a":    true,
	"NA":     true,
	"None":   true,
	"none":   true,
	"":       true,
}

// Value is an optional cell value. The zero value is missing. A
// present Value always holds a non-empty string.
type Value struct {
	text string
	ok   bool
}

// Some returns a present Value, or a missing one if text is empty.
func Some(text string) Value {
	if text == "" {
		return Value{}
	}

	return Value{text: text, ok: true}
}

// None returns a missing Value.
func None() Value {
	return Value{}
}

// Decode maps wire text to a Value, folding the sentinel and its
// null-like spellings into missing.
func Decode(text string) Value {
	if nullLike[text] {
		return Value{}
	}

	return Value{text: text, ok: true}
}

// Missing reports whether the value is absent.
func (v Value) Missing() bool {
	return !v.ok
}

// Text returns the raw text, or the empty string when missing.
func (v Value) Text() string {
	return v.text
}

// Encode returns the wire form: the text itself, or the sentinel when
// missing.
func (v Value) Encode() string {
	if !v.ok {
		return Sentinel
	}

	return v.text
}
