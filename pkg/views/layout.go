// Package views renders the site's pages as gomponents node trees.
package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/reachx/reach-site/pkg/content"
)

// PageConfig carries document-level metadata
type PageConfig struct {
	Title       string
	Description string
}

const defaultDescription = "Reach is the professional infrastructure platform for Minecraft studios and creators."

// Page wraps body nodes in the HTML5 document shell
func Page(cfg PageConfig, body ...g.Node) g.Node {
	description := cfg.Description
	if description == "" {
		description = defaultDescription
	}

	return c.HTML5(c.HTML5Props{
		Title:       cfg.Title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("theme-color"), Content("#0a0a0a")),
			Link(Rel("icon"), Href("/static/favicon.svg"), Type("image/svg+xml")),
			Link(Rel("stylesheet"), Href("/static/site.css")),
		},
		Body: []g.Node{
			Div(Class("site"), g.Group(body)),
		},
	})
}

func logo() g.Node {
	return A(Class("logo"), Href("/"),
		Span(Class("logo-mark"), g.Text("R")),
		Span(Class("logo-name"), g.Text("Reach")),
	)
}

// Navbar is the floating pill navigation shared by the marketing pages
func Navbar() g.Node {
	return Nav(Class("navbar"), Aria("label", "Main"),
		Div(Class("navbar-pill"),
			logo(),
			Div(Class("navbar-links"),
				g.Map(content.NavLinks, func(l content.Link) g.Node {
					return A(Class("navbar-link"), Href(l.Href), g.Text(l.Label))
				}),
			),
			Span(Class("navbar-sep")),
			Div(Class("navbar-actions"),
				A(Class("btn btn-ghost btn-sm"), Href("#"), g.Text("Sign in")),
				A(Class("btn btn-primary btn-sm"), Href("/downloads"), g.Text("Get started")),
			),
		),
	)
}

// SiteFooter renders the link columns and copyright line.
func SiteFooter(year int) g.Node {
	return Footer(Class("footer"),
		Div(Class("container footer-grid"),
			Div(Class("footer-brand"),
				logo(),
				P(Class("muted small"), g.Text("Infrastructure for Minecraft creators.")),
			),
			g.Map(content.FooterGroups, func(group content.LinkGroup) g.Node {
				return Div(Class("footer-group"),
					P(Class("footer-group-title"), g.Text(group.Title)),
					Ul(
						g.Map(group.Links, func(l content.Link) g.Node {
							return Li(A(Class("footer-link"), Href(l.Href), g.Text(l.Label)))
						}),
					),
				)
			}),
		),
		Div(Class("container footer-bottom"),
			P(g.Text("© "+strconv.Itoa(year)+" Reach")),
			Div(Class("status"),
				Span(Class("status-dot")),
				g.Text("All systems operational"),
			),
		),
	)
}

// sectionHeading is the eyebrow/title/lead block that opens most sections
func sectionHeading(eyebrow, title, lead string) g.Node {
	return Div(Class("section-heading"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(Class("section-title"), g.Text(title)),
		g.If(lead != "", P(Class("section-lead"), g.Text(lead))),
	)
}

func statCards(stats []content.Stat) g.Node {
	return Div(Class("stats"),
		g.Map(stats, func(s content.Stat) g.Node {
			return Div(Class("stat"),
				P(Class("stat-value"), g.Text(s.Value)),
				P(Class("stat-label"), g.Text(s.Label)),
			)
		}),
	)
}
