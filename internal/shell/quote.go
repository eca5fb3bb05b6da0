package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrUnquotable is returned for input that cannot be passed as one shell argument
var ErrUnquotable = errors.New("string cannot be represented as a single shell token")

// Quote returns s as a single shell token. The shell turns the token back
// into exactly s. Strings containing a NUL byte cannot be passed to a
// process as an argument and are rejected.
func Quote(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", fmt.Errorf("%w: %q contains a NUL byte", ErrUnquotable, s)
	}
	quoted := shellquote.Join(s)
	// A word starting with # would begin a comment
	if strings.HasPrefix(quoted, "#") {
		quoted = `\` + quoted
	}
	return quoted, nil
}

// MustQuote is like Quote but panics on unquotable input
func MustQuote(s string) string {
	quoted, err := Quote(s)
	if err != nil {
		panic(err)
	}
	return quoted
}

// Join quotes every argument and joins them with single spaces
func Join(args ...string) (string, error) {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		q, err := Quote(arg)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}

// Split breaks a command line into words the way the shell would
func Split(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", line, err)
	}
	return words, nil
}
