// Package dirpath resolves directory locations from path fragments.
//
// A Dir is built once from an ordered list of fragments, each of which
// may be ~-relative, and afterwards acts as a path joiner rooted at the
// resolved directory. A fragment that resolves to an existing regular
// file collapses to the file's containing directory, so a Dir can be
// seeded from a file path to address that file's siblings.
package dirpath

import (
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Dir is a resolved absolute directory path.
//
// The path is fixed at construction. Join performs pure string joining
// against it; Pushd and Do additionally switch the process working
// directory, which is global state; see their doc comments.
type Dir struct {
	path string
}

// New resolves fragments into a Dir.
//
// Fragments are processed in order: a leading ~ or ~user is expanded to
// the matching home directory, the fragment is joined onto the path
// accumulated so far and made absolute, and if the accumulated path is
// an existing regular file it is replaced by its containing directory
// before the next fragment is joined.
//
// The file check runs after every fragment, not once at the end. When
// several fragments each name an existing file, only the final
// containing directory survives. Callers depend on this, so it is kept
// even though a single final check would be the less surprising design.
//
// Missing paths are not an error; the only filesystem interaction is
// the regular-file check, and any failure there counts as "not a
// file". Errors are returned only when the environment itself is
// unusable: the current user's home directory cannot be determined for
// a bare ~, or the working directory cannot be read while making a
// relative fragment absolute.
func New(fragments ...string) (*Dir, error) {
	path := ""
	for _, fragment := range fragments {
		expanded, err := expandUser(fragment)
		if err != nil {
			return nil, err
		}

		abs, err := filepath.Abs(joinOne(path, expanded))
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", fragment, err)
		}
		path = abs

		if isRegularFile(path) {
			path = filepath.Dir(path)
		}
	}

	if path == "" {
		// No fragments: anchor at the working directory so the base
		// is always absolute.
		abs, err := filepath.Abs("")
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		path = abs
	}

	return &Dir{path: path}, nil
}

// Path returns the resolved absolute directory path.
func (d *Dir) Path() string {
	return d.path
}

// String returns the resolved absolute directory path.
func (d *Dir) String() string {
	return d.path
}

// Join returns the base path joined with each part in order.
//
// Joining is plain separator concatenation: no cleaning, no existence
// checks, no side effects. An absolute part discards everything
// accumulated before it.
func (d *Dir) Join(parts ...string) string {
	p := d.path
	for _, part := range parts {
		p = joinOne(p, part)
	}
	return p
}

// Pushd changes the process working directory to the base path and
// returns a closure that restores the previous working directory.
//
// The working directory is process-wide state. Nothing else in the
// process may depend on path-relative operations between Pushd and
// restore, and nesting Pushd across different Dirs is not safe.
// Restoration is best-effort; its failure is not reported.
//
// Prefer passing Path or Join results to the code that needs them.
// Pushd exists for external tools that genuinely require a working
// directory change.
func (d *Dir) Pushd() (restore func(), err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("read working directory: %w", err)
	}
	if err := os.Chdir(d.path); err != nil {
		return nil, fmt.Errorf("enter %s: %w", d.path, err)
	}
	slog.Debug("changed working directory", "dir", d.path, "previous", prev)

	return func() {
		_ = os.Chdir(prev)
		slog.Debug("restored working directory", "dir", prev)
	}, nil
}

// Do runs fn with the working directory switched to the base path and
// restores the previous working directory afterwards, even when fn
// returns an error or panics. It returns fn's error, or the Pushd
// error if the directory could not be entered at all.
func (d *Dir) Do(fn func(*Dir) error) error {
	restore, err := d.Pushd()
	if err != nil {
		return err
	}
	defer restore()
	return fn(d)
}

// joinOne joins part onto base with plain separator concatenation.
// An absolute part replaces base entirely, an empty base yields the
// part as-is.
func joinOne(base, part string) string {
	if filepath.IsAbs(part) {
		return part
	}
	if base == "" {
		return part
	}
	if strings.HasSuffix(base, string(filepath.Separator)) {
		return base + part
	}
	return base + string(filepath.Separator) + part
}

// expandUser expands a leading ~ or ~user to the matching home
// directory. A fragment without a tilde prefix passes through
// unchanged, as does a ~user form naming an unknown user.
func expandUser(fragment string) (string, error) {
	if !strings.HasPrefix(fragment, "~") {
		return fragment, nil
	}

	name, rest, _ := strings.Cut(fragment[1:], string(filepath.Separator))

	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", fragment, err)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			// Unknown user: leave the fragment alone, matching the
			// pass-through behaviour callers expect from shell-style
			// expansion.
			return fragment, nil
		}
		home = u.HomeDir
	}

	if rest == "" {
		return home, nil
	}
	return joinOne(home, rest), nil
}

// isRegularFile reports whether path exists as a regular file.
// Stat failures of any kind, permission errors included, count as
// "not a file".
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
