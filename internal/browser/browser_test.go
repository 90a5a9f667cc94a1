package browser

import (
	"path/filepath"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.google.com/search?q=site%3Ainstagram.com", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Check(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Check(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Check(%q): unexpected error: %v", tt.url, err)
		}
	}
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	if err := Open("file:///etc/passwd"); err == nil {
		t.Error("expected Open to reject file URLs")
	}
}

func TestCommandPerOS(t *testing.T) {
	t.Setenv("BROWSER", "")
	const u = "https://example.com/?q=a&b=c"

	tests := []struct {
		goos string
		want string
		args []string
	}{
		{"darwin", "open", []string{u}},
		{"linux", "xdg-open", []string{u}},
		{"freebsd", "xdg-open", []string{u}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", u}},
	}
	for _, tt := range tests {
		cmd := command(tt.goos, u)
		if filepath.Base(cmd.Args[0]) != tt.want {
			t.Errorf("command(%s) = %v, want %s", tt.goos, cmd.Args, tt.want)
		}
		if len(cmd.Args)-1 != len(tt.args) || cmd.Args[len(cmd.Args)-1] != u {
			t.Errorf("command(%s) args = %v, want %v", tt.goos, cmd.Args[1:], tt.args)
		}
	}
}

func TestCommandHonoursBrowserEnv(t *testing.T) {
	t.Setenv("BROWSER", "firefox")
	cmd := command("linux", "https://example.com")
	if cmd.Args[0] != "firefox" {
		t.Errorf("expected $BROWSER to be used, got %v", cmd.Args)
	}
}
