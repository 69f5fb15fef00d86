package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/reachx/reach-site/pkg/content"
	"github.com/reachx/reach-site/pkg/platform"
)

// DownloadsView is the data behind the downloads page
type DownloadsView struct {
	Detection platform.Detection
	Version   string
	Year      int
}

// DownloadHref is the tracked download link for an OS
func DownloadHref(os platform.OS) string {
	return "/download/" + string(os)
}

// DownloadsPage renders the OS-aware downloads page
func DownloadsPage(v DownloadsView) g.Node {
	return Page(PageConfig{
		Title:       "Download Reach Client",
		Description: "Download the Reach Client for Windows, macOS and Linux.",
	},
		Navbar(),
		Main(
			downloadHero(v.Detection, v.Version),
			clientFeatures(),
			platformList(),
			Div(Class("container"), Hr(Class("separator"))),
			resourceList(),
		),
		SiteFooter(v.Year),
	)
}

func downloadHero(d platform.Detection, version string) g.Node {
	return Section(Class("hero hero-center"),
		Div(Class("container hero-inner-center"),
			Span(Class("badge"), g.Text("The current version is "+version)),
			H1(Class("hero-title"), g.Text(d.Title())),
			P(Class("hero-lead"),
				g.Text("Reach Client is a Minecraft launcher that allows you to join public or private events and servers hosted by our clients, keeping your data secure, encrypted, and up to date at all times."),
			),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary btn-lg"), ID("primary-download"), Href(d.ButtonHref()), g.Text(d.ButtonLabel())),
				A(Class("btn btn-outline btn-lg"), Href("#downloads"), g.Text("More options")),
			),
			g.If(d.OS.Known() && d.Arch != "",
				P(Class("muted small"), g.Text("Detected "+d.OS.Label()+" on "+d.Arch)),
			),
			Div(Class("hero-preview card"),
				Div(Class("window-dots"),
					Span(Class("dot dot-red")), Span(Class("dot dot-yellow")), Span(Class("dot dot-green")),
					Span(Class("muted small"), g.Text("Reach Client")),
				),
				statCards(content.DownloadStats),
			),
		),
	)
}

func clientFeatures() g.Node {
	return Section(Class("section"), ID("features"),
		Div(Class("container"),
			sectionHeading("", "Features",
				"Reach Client has defining features, and the Reach team develops new skills for the Minecraft launcher every day. Learn about some of them."),
			featureCards(content.ClientFeatures),
		),
	)
}

func platformList() g.Node {
	return Section(Class("section"), ID("downloads"),
		Div(Class("container"),
			sectionHeading("", "Download the Reach Client for your operating system.",
				"The Reach Client is available for the following operating systems:"),
			Div(Class("cards cards-3"),
				g.Map(content.Platforms, func(p content.Platform) g.Node {
					return Div(Class("platform"), Data("os", string(p.OS)),
						Div(Class("platform-head"),
							H3(Class("card-title"), g.Text(p.Name)),
							Span(Class("badge badge-sm"), g.Text(p.Badge)),
						),
						P(Class("muted"), g.Text(p.Description)),
						A(Class("btn btn-primary btn-block"), Href(DownloadHref(p.OS)), g.Text("Download for "+p.Name)),
					)
				}),
			),
		),
	)
}

func resourceList() g.Node {
	return Section(Class("section"), ID("resources"),
		Div(Class("container"),
			sectionHeading("", "More resources",
				"Here you can find more resources about the Reach Infrastructure."),
			Div(Class("cards cards-3"),
				g.Map(content.Resources, func(r content.Resource) g.Node {
					return Div(Class("resource"),
						H3(Class("card-title"), g.Text(r.Title)),
						P(Class("muted"), g.Text(r.Description)),
						Div(Class("resource-actions"),
							A(Class("btn btn-primary"), Href("#"), g.Text("Download")),
							g.If(r.GitHubURL != "",
								A(Class("btn btn-outline"), Href(r.GitHubURL), Target("_blank"), Rel("noopener noreferrer"), g.Text("View on GitHub")),
							),
						),
					)
				}),
			),
		),
	)
}
