package content

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/takaishi/minigrep/errs"
)

// ErrInvalidUTF8 is wrapped by Load when the file is not UTF-8 text
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Load reads the whole file as text
func Load(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", errs.Application(fmt.Errorf("failed to read file: %w", err))
	}

	if !utf8.Valid(data) {
		return "", errs.Application(fmt.Errorf("failed to read file %s: %w", file, ErrInvalidUTF8))
	}

	return string(data), nil
}
