// Package wrap applies a middleware to a declared list of named
// function slots. It replaces the reflective "decorate every matching
// method" pattern with an explicit one: the target type lists the
// callables it wants rewrappable, and Each rewraps the ones a filter
// selects, in place.
package wrap

import "strings"

// Middleware transforms a function into a wrapped function of the same
// signature.
type Middleware[F any] func(F) F

// Slot names a rewrappable function. Fn points at the function value
// so the wrapped form can be installed in place.
type Slot[F any] struct {
	Name string
	Fn   *F
}

// Filter selects slots by name.
type Filter func(name string) bool

// Prefix returns a Filter matching names with the given prefix. This
// keeps the common "wrap everything named handle*" convention cheap to
// express.
func Prefix(prefix string) Filter {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}

// Each rewraps every slot the filter selects. A nil filter selects all
// slots; slots with a nil function pointer are skipped.
func Each[F any](mw Middleware[F], filter Filter, slots ...Slot[F]) {
	for _, slot := range slots {
		if slot.Fn == nil {
			continue
		}
		if filter != nil && !filter(slot.Name) {
			continue
		}
		*slot.Fn = mw(*slot.Fn)
	}
}
