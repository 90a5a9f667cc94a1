// Package browser opens search URLs in the user's browser.
package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Check rejects anything that is not an absolute http(s) URL.
func Check(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("refusing to open URL without host")
	}
	return nil
}

// command picks the launcher for goos. $BROWSER wins when set.
func command(goos, rawURL string) *exec.Cmd {
	if b := strings.TrimSpace(os.Getenv("BROWSER")); b != "" {
		return exec.Command(b, rawURL)
	}
	switch goos {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		// rundll32 avoids cmd /c start and its shell parsing of & in queries
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

// Open launches the system browser on rawURL without waiting for it.
func Open(rawURL string) error {
	if err := Check(rawURL); err != nil {
		return err
	}
	if err := command(runtime.GOOS, rawURL).Start(); err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	return nil
}
