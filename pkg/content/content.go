// Package content holds the static copy rendered by the site: navigation,
// feature lists, pricing plans, platforms and footer links.
package content

import "github.com/reachx/reach-site/pkg/platform"

// LauncherVersion is the launcher beta announced on the landing page
const LauncherVersion = "0.9.2"

// Link is a labelled href
type Link struct {
	Label string
	Href  string
}

// Feature is a titled description shown in a card grid
type Feature struct {
	Title       string
	Description string
	Highlight   string
}

// Stat is a label/value pair for the dashboard preview cards
type Stat struct {
	Label string
	Value string
}

// Step is one stage of the creator journey
type Step struct {
	Number      string
	Title       string
	Description string
}

// Partner is a technology partner shown in the partner strip
type Partner struct {
	Name string
	Mark string
}

// Platform is a downloadable build target
type Platform struct {
	OS          platform.OS
	Name        string
	Badge       string
	Description string
}

// Resource is an extra download on the downloads page
type Resource struct {
	Title       string
	Description string
	GitHubURL   string
}

// LinkGroup is a titled column of footer links
type LinkGroup struct {
	Title string
	Links []Link
}

var NavLinks = []Link{
	{Label: "Features", Href: "/#features"},
	{Label: "Pricing", Href: "/#pricing"},
	{Label: "Downloads", Href: "/downloads"},
	{Label: "Docs", Href: "/#docs"},
}

var HeroStats = []Stat{
	{Label: "Active Users", Value: "2.4K"},
	{Label: "Uptime", Value: "99.9%"},
	{Label: "Projects", Value: "156"},
}

var DownloadStats = []Stat{
	{Label: "Active Users", Value: "2.4K+"},
	{Label: "Uptime", Value: "99.9%"},
	{Label: "Experiences", Value: "156"},
}

var MarqueeWords = []string{"Fast", "Reliable", "Secure", "Scalable", "Professional", "Protected"}

var SecurityFeatures = []Feature{
	{
		Title:       "Data Encryption",
		Description: "Our proprietary ReachC algorithm combines military-grade encryption with unique, unrepeatable keys. Your data remains impenetrable.",
	},
	{
		Title:       "No leaks. Everything secure.",
		Description: "RPB protection system blocks unauthorized screenshots and recordings. Your creations stay yours, protected at the system level.",
	},
	{
		Title:       "You create it. You control it.",
		Description: "Complete ownership over your data and projects. Granular permissions, audit logs, and instant access revocation.",
	},
}

var LauncherHighlights = []string{
	"Sub-50ms cold boot time",
	"Zero-copy memory architecture",
	"Sandboxed execution environment",
}

var Benefits = []Feature{
	{
		Title:       "Automated Backups",
		Description: "Never lose your work. Automatic backups with point-in-time restoration. Roll back to any moment with a single click.",
		Highlight:   "99.99% durability",
	},
	{
		Title:       "Discord Integration",
		Description: "Manage everything from Discord. Real-time notifications, server commands, and team collaboration in your favorite app.",
		Highlight:   "Full bot integration",
	},
	{
		Title:       "Client Management",
		Description: "Advanced control panel for your experiences. Analytics, user management, and deployment automation in one unified dashboard.",
		Highlight:   "Complete control",
	},
}

var Partners = []Partner{
	{Name: "Cloudflare", Mark: "☁️"},
	{Name: "Vercel", Mark: "▲"},
	{Name: "Oracle", Mark: "◈"},
	{Name: "Microsoft Azure", Mark: "⬡"},
	{Name: "Rust", Mark: "🦀"},
	{Name: "Polar", Mark: "❄️"},
}

var JourneySteps = []Step{
	{Number: "01", Title: "Create", Description: "Build your Minecraft experience with our powerful SDK and intuitive tools."},
	{Number: "02", Title: "Protect", Description: "Your creation is encrypted with ReachC algorithm. No leaks, no worries."},
	{Number: "03", Title: "Deploy", Description: "One click deployment to our global infrastructure. Instant scaling."},
	{Number: "04", Title: "Grow", Description: "Reach millions of players. Monetize through our marketplace."},
}

var ClientFeatures = []Feature{
	{
		Title:       "Files always up to date",
		Description: "Reach Launcher is always up to date with the latest version of Minecraft clients from official sources. It also keeps experience packs secure from end to end.",
	},
	{
		Title:       "Encrypted data",
		Description: "Reach Client encrypts your data to keep it safe from prying eyes. It uses unique encryption methods designed by the Reach Team to keep everything in order for both users and developers.",
	},
	{
		Title:       "Game Overlay",
		Description: "Reach Client builds a game overlay that allows you to see relevant information about the organizations behind the experience you are playing, global and unique achievements per experience, and other important information while you play.",
	},
}

var Platforms = []Platform{
	{
		OS:          platform.Windows,
		Name:        "Windows",
		Badge:       "x86 - x64",
		Description: "The Reach Client is available for Windows 10 and Windows 11.",
	},
	{
		OS:          platform.Linux,
		Name:        "Linux",
		Badge:       "x86 - x64 - ARM",
		Description: "The Reach Client is available for Linux or another Unix-like operating system.",
	},
	{
		OS:          platform.MacOS,
		Name:        "macOS",
		Badge:       "Apple Silicon or Intel",
		Description: "The Reach Client is available for macOS with Intel or Apple Silicon.",
	},
}

var Resources = []Resource{
	{
		Title:       "Minecraft Instance Template",
		Description: "Download a Minecraft instance template to start your own instance.",
	},
	{
		Title:       "ReachY Checker",
		Description: "Verify your Minecraft instances with the ReachY Checker.",
		GitHubURL:   "https://github.com/reachx/reachy-checker",
	},
	{
		Title:       "ReachY",
		Description: "The ReachY is a tool to manage your Minecraft instances.",
		GitHubURL:   "https://github.com/reachx/reachy",
	},
}

var FooterGroups = []LinkGroup{
	{Title: "Product", Links: []Link{
		{Label: "Features", Href: "/#features"},
		{Label: "Pricing", Href: "/#pricing"},
		{Label: "Launcher", Href: "/downloads"},
		{Label: "Changelog", Href: "#"},
	}},
	{Title: "Company", Links: []Link{
		{Label: "About", Href: "#"},
		{Label: "Blog", Href: "#"},
		{Label: "Careers", Href: "#"},
	}},
	{Title: "Resources", Links: []Link{
		{Label: "Docs", Href: "#"},
		{Label: "API", Href: "#"},
		{Label: "Status", Href: "#"},
	}},
	{Title: "Legal", Links: []Link{
		{Label: "Privacy", Href: "/legal/privacy"},
		{Label: "Terms", Href: "/legal/terms"},
	}},
}

// PlatformFor returns the platform entry for an OS
func PlatformFor(os platform.OS) (Platform, bool) {
	for _, p := range Platforms {
		if p.OS == os {
			return p, true
		}
	}
	return Platform{}, false
}
