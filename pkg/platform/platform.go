// Package platform classifies a browser user-agent into a coarse operating
// system for choosing download labels. It is a display heuristic only.
package platform

import "strings"

// OS is the detected operating system
type OS string

const (
	Windows OS = "windows"
	MacOS   OS = "macos"
	Linux   OS = "linux"
	Unknown OS = "unknown"
)

// Known lists the operating systems a download exists for, in display order
var Known = []OS{Windows, Linux, MacOS}

// Detect maps a user-agent string to an OS.
// Checks run in order windows, macos, linux and the first match wins.
func Detect(userAgent string) OS {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "win"):
		return Windows
	case strings.Contains(ua, "mac"):
		return MacOS
	case strings.Contains(ua, "linux"):
		return Linux
	default:
		return Unknown
	}
}

// Parse converts a path segment such as "linux" into a known OS
func Parse(s string) (OS, bool) {
	for _, os := range Known {
		if string(os) == strings.ToLower(s) {
			return os, true
		}
	}
	return Unknown, false
}

// Label returns the human readable name
func (o OS) Label() string {
	switch o {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "your system"
	}
}

// Known reports whether a download exists for the OS
func (o OS) Known() bool {
	return o == Windows || o == MacOS || o == Linux
}

// ArchHint extracts a CPU architecture from the user-agent when it names one.
// Returns "" when nothing recognizable is present.
func ArchHint(userAgent string) string {
	ua := strings.ToLower(userAgent)

	for _, token := range []string{"arm64", "aarch64"} {
		if strings.Contains(ua, token) {
			return "arm64"
		}
	}
	for _, token := range []string{"x86_64", "win64", "wow64", "amd64", "x64"} {
		if strings.Contains(ua, token) {
			return "x64"
		}
	}
	return ""
}

// Detection is the per-request result rendered by the download hero
type Detection struct {
	OS   OS
	Arch string
}

// DetectRequest runs both classifiers on a user-agent
func DetectRequest(userAgent string) Detection {
	return Detection{
		OS:   Detect(userAgent),
		Arch: ArchHint(userAgent),
	}
}

// Title is the download hero headline
func (d Detection) Title() string {
	if !d.OS.Known() {
		return "Download Reach Client now"
	}
	return "Download Reach Client for " + d.OS.Label()
}

// ButtonLabel is the primary download button text
func (d Detection) ButtonLabel() string {
	if !d.OS.Known() {
		return "Download now"
	}
	return "Download for " + d.OS.Label()
}

// ButtonHref points at the platform download, or at the platform list when unknown
func (d Detection) ButtonHref() string {
	if !d.OS.Known() {
		return "#downloads"
	}
	return "/download/" + string(d.OS)
}
