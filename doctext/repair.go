package doctext

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxRepairPasses bounds how many nested bad round-trips Repair will
// undo. Real-world mojibake is almost always one or two layers deep.
const maxRepairPasses = 3

// repairCharmaps are the single-byte encodings a bad decode most
// commonly went through. Windows-1252 first: it is the usual culprit
// and a superset of Latin-1 in the printable range. ISO 8859-1 second,
// for the C1 range that Windows-1252 leaves unmapped.
var repairCharmaps = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// Repair undoes text that was garbled by an incorrect encode/decode
// round-trip: UTF-8 bytes that were mis-decoded through a single-byte
// charset and re-encoded, turning "é" into "Ã©". The check is
// conservative: text only changes when re-encoding it through one of
// the candidate charsets yields valid multi-byte UTF-8, so correctly
// decoded text passes through untouched. The result is NFC-normalised.
// Repair is best-effort and always returns some string.
func Repair(s string) string {
	cur := s
	for range maxRepairPasses {
		fixed, ok := undoBadRoundTrip(cur)
		if !ok {
			break
		}
		cur = fixed
	}
	return norm.NFC.String(cur)
}

// undoBadRoundTrip attempts one layer of mojibake reversal. It reports
// false when the text does not look garbled or no candidate charset
// produces a plausible fix.
func undoBadRoundTrip(s string) (string, bool) {
	if !looksGarbled(s) {
		return s, false
	}

	for _, cm := range repairCharmaps {
		raw, _, err := transform.String(cm.NewEncoder(), s)
		if err != nil {
			continue
		}
		// The re-encoded bytes must themselves read as UTF-8 with at
		// least one multi-byte sequence. Ordinary accented text fails
		// this, mis-decoded text passes it.
		if raw == s || !utf8.ValidString(raw) || !hasHighByte(raw) {
			continue
		}
		return raw, true
	}

	return s, false
}

// looksGarbled reports whether the text contains any rune a single
// bad decode round-trip could have produced. Mojibake always carries
// the mis-decoded UTF-8 lead byte as a rune in the 0x80–0xFF range.
func looksGarbled(s string) bool {
	for _, r := range s {
		if r >= 0x80 && r <= 0xFF {
			return true
		}
	}
	return false
}

func hasHighByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}
