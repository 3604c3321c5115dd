// Package doctext normalises human-authored documentation strings.
//
// A Doc holds cleaned documentation text and offers two derived views:
// the first line, and a line-folded rendering that removes word-wrap
// artefacts while keeping paragraph breaks. Construction is explicit
// about the input's shape: New takes text that is already correctly
// decoded, Decode takes raw UTF-8 bytes and additionally runs a
// best-effort repair pass over garbled encodings.
package doctext

import "strings"

// Doc is a cleaned documentation string.
type Doc struct {
	// Raw is the cleaned text. Empty when the source had no
	// documentation.
	Raw string
}

// Documented is implemented by values that carry their own
// documentation text. It is the declared capability used by FromEntity
// and FirstLine in place of any runtime member inspection.
type Documented interface {
	Documentation() string
}

// New builds a Doc from text, cleaning it with Clean. No decoding or
// repair happens; the text is taken as already correct.
func New(s string) Doc {
	return Doc{Raw: Clean(s)}
}

// Decode builds a Doc from raw UTF-8 bytes. The text is cleaned, then
// passed through Repair to undo a bad decode round-trip if one is
// detected.
func Decode(b []byte) Doc {
	return Doc{Raw: Repair(Clean(string(b)))}
}

// FromEntity builds a Doc from an entity's attached documentation.
// Entities without the Documented capability, or with empty
// documentation, yield an empty Doc.
func FromEntity(v any) Doc {
	s, ok := documentation(v)
	if !ok {
		return Doc{}
	}
	return New(s)
}

// FromEntityDecoded is FromEntity with the Decode construction path.
// The empty case short-circuits before any repair work.
func FromEntityDecoded(v any) Doc {
	s, ok := documentation(v)
	if !ok {
		return Doc{}
	}
	return Decode([]byte(s))
}

// FirstLine returns the first cleaned documentation line of an entity.
// This is the common, low-ceremony accessor.
func FirstLine(v any) string {
	return FromEntity(v).First()
}

// First returns the text up to the first newline, or the whole text
// when there is none.
func (d Doc) First() string {
	first, _, _ := strings.Cut(d.Raw, "\n")
	return first
}

// Full returns the text with single newlines folded into spaces and
// blank-line paragraph breaks preserved. Word-wrap inside a paragraph
// disappears; the break between paragraphs stays.
func (d Doc) Full() string {
	// Vertical tab stands in for the paragraph break while single
	// newlines are folded; it is not expected in documentation text.
	out := strings.ReplaceAll(d.Raw, "\n\n", "\v")
	out = strings.ReplaceAll(out, "\n", " ")
	return strings.ReplaceAll(out, "\v", "\n\n")
}

func documentation(v any) (string, bool) {
	d, ok := v.(Documented)
	if !ok {
		return "", false
	}
	s := d.Documentation()
	if s == "" {
		return "", false
	}
	return s, true
}
