package platform

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      OS
	}{
		{
			name:      "windows 10 chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			want:      Windows,
		},
		{
			name:      "macos safari",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
			want:      MacOS,
		},
		{
			name:      "linux firefox",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			want:      Linux,
		},
		{
			name:      "upper case",
			userAgent: "WINDOWS",
			want:      Windows,
		},
		{
			name:      "windows wins over mac",
			userAgent: "darwin mac win",
			want:      Windows,
		},
		{
			name:      "mac wins over linux",
			userAgent: "linux mac",
			want:      MacOS,
		},
		{
			name:      "empty",
			userAgent: "",
			want:      Unknown,
		},
		{
			name:      "curl",
			userAgent: "curl/8.4.0",
			want:      Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.userAgent); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.userAgent, got, tt.want)
			}
		})
	}
}

func TestDetectSubstringRule(t *testing.T) {
	// Any string containing "win" maps to windows regardless of surrounding text
	for _, ua := range []string{"win", "xWiNx", "darwin", "twin peaks linux mac"} {
		if got := Detect(ua); got != Windows {
			t.Errorf("Detect(%q) = %s, want windows", ua, got)
		}
	}
	for _, ua := range []string{"mac", "MACHINE", "iMac linux"} {
		if got := Detect(ua); got != MacOS {
			t.Errorf("Detect(%q) = %s, want macos", ua, got)
		}
	}
	for _, ua := range []string{"linux", "LINUX", "Android; Linux armv8l"} {
		if got := Detect(ua); got != Linux {
			t.Errorf("Detect(%q) = %s, want linux", ua, got)
		}
	}
}

func TestParse(t *testing.T) {
	for _, os := range Known {
		got, ok := Parse(strings.ToUpper(string(os)))
		if !ok || got != os {
			t.Errorf("Parse(%q) = %s, %v", os, got, ok)
		}
	}

	if _, ok := Parse("unknown"); ok {
		t.Error("Expected unknown to be rejected")
	}
	if _, ok := Parse("beos"); ok {
		t.Error("Expected beos to be rejected")
	}
}

func TestLabel(t *testing.T) {
	got := map[OS]string{}
	for _, os := range []OS{Windows, MacOS, Linux, Unknown} {
		got[os] = os.Label()
	}

	want := map[OS]string{
		Windows: "Windows",
		MacOS:   "macOS",
		Linux:   "Linux",
		Unknown: "your system",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestArchHint(t *testing.T) {
	tests := []struct {
		userAgent string
		want      string
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "x64"},
		{"Mozilla/5.0 (X11; Linux x86_64)", "x64"},
		{"Mozilla/5.0 (X11; Linux aarch64)", "arm64"},
		{"Mozilla/5.0 (Windows NT 10.0; ARM64)", "arm64"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2)", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ArchHint(tt.userAgent); got != tt.want {
			t.Errorf("ArchHint(%q) = %q, want %q", tt.userAgent, got, tt.want)
		}
	}
}

func TestDetectionLabels(t *testing.T) {
	d := DetectRequest("Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	if d.OS != Windows {
		t.Fatalf("Expected windows, got %s", d.OS)
	}
	if !strings.Contains(d.ButtonLabel(), "Windows") {
		t.Errorf("Expected button label to include Windows, got %q", d.ButtonLabel())
	}
	if d.Title() != "Download Reach Client for Windows" {
		t.Errorf("Unexpected title %q", d.Title())
	}
	if d.ButtonHref() != "/download/windows" {
		t.Errorf("Unexpected href %q", d.ButtonHref())
	}
	if d.Arch != "x64" {
		t.Errorf("Expected x64 arch, got %q", d.Arch)
	}

	unknown := DetectRequest("")
	if unknown.ButtonLabel() != "Download now" {
		t.Errorf("Unexpected unknown label %q", unknown.ButtonLabel())
	}
	if unknown.Title() != "Download Reach Client now" {
		t.Errorf("Unexpected unknown title %q", unknown.Title())
	}
	if unknown.ButtonHref() != "#downloads" {
		t.Errorf("Unexpected unknown href %q", unknown.ButtonHref())
	}
}
