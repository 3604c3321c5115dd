// Package emoji picks a random symbol from a small curated set.
//
// The set holds symbols with positive or neutral connotations only: no
// depictions of people, no identity symbols, nothing that has acquired
// a punny or tasteless reading. The selection skews western; additions
// from other traditions are welcome.
package emoji

import "math/rand/v2"

var symbols = []string{
	"👻", "👾", "🤖", "😼", "💫",
	"👒", "🎩", "🐶", "🦎", "🐚",
	"🌸", "🌲", "🍋", "🥝", "🥑",
	"🥐", "🍿", "🥄", "⛺", "🚂",
	"🚲", "🌈", "🏆", "🎵", "💡",
	"✏", "🖍", "📌", "🛡", "♻",
}

// Pick returns one symbol chosen uniformly at random from the declared
// set.
func Pick() string {
	return symbols[rand.IntN(len(symbols))]
}

// Symbols returns a copy of the declared symbol set.
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}
