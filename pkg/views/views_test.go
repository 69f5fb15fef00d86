package views

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/reachx/reach-site/pkg/content"
	"github.com/reachx/reach-site/pkg/platform"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()

	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return b.String()
}

func TestHomePage(t *testing.T) {
	html := render(t, HomePage(HomeView{Version: "0.9.2", Billing: content.Monthly, Year: 2026}))

	for _, want := range []string{
		"<!doctype html>",
		"<title>Reach - Infrastructure for Minecraft creators</title>",
		`href="/static/site.css"`,
		`id="pricing"`,
		"Beta v0.9.2",
		"© 2026 Reach",
		"Data Encryption",
		"Automated Backups",
		"Cloudflare",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected home page to contain %q", want)
		}
	}
}

func TestPricingMonthly(t *testing.T) {
	html := render(t, Pricing(content.Monthly))

	for _, want := range []string{"$5", "$25", "$45"} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected monthly price %s", want)
		}
	}
	if strings.Contains(html, "Billed annually") {
		t.Error("Monthly pricing should not mention annual billing")
	}
}

func TestPricingYearly(t *testing.T) {
	monthly := render(t, Pricing(content.Monthly))
	yearly := render(t, Pricing(content.Yearly))

	for _, want := range []string{"$4<", "$20<", "$36<", "Billed annually"} {
		if !strings.Contains(yearly, want) {
			t.Errorf("Expected yearly pricing to contain %q", want)
		}
	}
	for _, unwanted := range []string{"$5<", "$25<", "$45<"} {
		if strings.Contains(yearly, unwanted) {
			t.Errorf("Yearly pricing should not show monthly price %q", unwanted)
		}
	}

	if got, want := featureSequence(yearly), featureSequence(monthly); got != want {
		t.Errorf("Feature lists differ between periods:\nmonthly: %s\nyearly:  %s", want, got)
	}
}

// featureSequence extracts plan feature texts in document order
func featureSequence(html string) string {
	const marker = `<li class="plan-feature">`
	var features []string
	for _, part := range strings.Split(html, marker)[1:] {
		features = append(features, part[:strings.Index(part, "</li>")])
	}
	return strings.Join(features, "|")
}

func TestPricingToggleMarksActive(t *testing.T) {
	html := render(t, Pricing(content.Yearly))

	if !strings.Contains(html, `href="/?billing=yearly#pricing" class="toggle-option active"`) {
		t.Errorf("Expected yearly toggle to be active:\n%s", html)
	}
	if !strings.Contains(html, `href="/?billing=monthly#pricing" class="toggle-option"`) {
		t.Error("Expected monthly toggle to be inactive")
	}
}

func TestDownloadsPageWindows(t *testing.T) {
	d := platform.DetectRequest("Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	html := render(t, DownloadsPage(DownloadsView{Detection: d, Version: "0.5.0-beta.canary", Year: 2026}))

	for _, want := range []string{
		"Download Reach Client for Windows",
		`href="/download/windows">Download for Windows</a>`,
		"The current version is 0.5.0-beta.canary",
		"Detected Windows on x64",
		`href="/download/linux"`,
		`href="/download/macos"`,
		"View on GitHub",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected downloads page to contain %q", want)
		}
	}
}

func TestDownloadsPageUnknown(t *testing.T) {
	html := render(t, DownloadsPage(DownloadsView{Detection: platform.DetectRequest("curl/8.0"), Version: "1.0"}))

	if !strings.Contains(html, "Download Reach Client now") {
		t.Error("Expected generic title for unknown OS")
	}
	if !strings.Contains(html, `id="primary-download" href="#downloads">Download now</a>`) {
		t.Error("Expected generic button pointing at platform list")
	}
	if strings.Contains(html, "Detected ") {
		t.Error("Expected no detection note for unknown OS")
	}
}

func TestLegalPage(t *testing.T) {
	html := render(t, LegalPage(LegalView{
		Title: "Terms of Service",
		Tabs: []LegalTab{
			{Label: "Privacy Policy", Href: "/legal/privacy"},
			{Label: "Terms of Service", Href: "/legal/terms", Active: true},
		},
		BodyHTML: `<h1 class="prose-h1">Terms</h1>`,
		Year:     2026,
	}))

	for _, want := range []string{
		"<title>Terms of Service - Reach</title>",
		`<a class="legal-tab active" href="/legal/terms" aria-current="page">Terms of Service</a>`,
		`<a class="legal-tab" href="/legal/privacy">Privacy Policy</a>`,
		`<article class="prose"><h1 class="prose-h1">Terms</h1></article>`,
		"Back to home",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected legal page to contain %q\n%s", want, html)
		}
	}
}

func TestNotFoundPage(t *testing.T) {
	html := render(t, NotFoundPage("/missing/<script>"))

	if !strings.Contains(html, "404") {
		t.Error("Expected 404 code")
	}
	if strings.Contains(html, "<script>") {
		t.Error("Path must be escaped")
	}
}
