package utils

import (
	"io"
	"os"
	"strings"
)

// ReadPipedInput reads everything from in when it is a pipe or a file.
// A terminal, or an empty regular file, yields "" without blocking.
func ReadPipedInput(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", err
		}

		// If it's a terminal, we don't want to block waiting for input
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", nil
		}

		// If it's a regular file and it's empty, return empty (don't block)
		if stat.Mode().IsRegular() && stat.Size() == 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
