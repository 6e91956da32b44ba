package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
)

// ErrUnsupportedURL is returned for links the platform opener should not run.
var ErrUnsupportedURL = errors.New("unsupported url")

func init() {
	// The opener's helper processes must not write into the terminal UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// OpenURL hands an http(s) link to the platform's default handler.
func OpenURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
