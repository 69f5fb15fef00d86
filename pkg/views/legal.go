package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LegalTab is one entry of the legal navigation
type LegalTab struct {
	Label  string
	Href   string
	Active bool
}

// LegalView is the data behind a legal page. BodyHTML must already be sanitized.
type LegalView struct {
	Title    string
	Tabs     []LegalTab
	BodyHTML string
	Year     int
}

// LegalPage renders a legal document inside the legal layout
func LegalPage(v LegalView) g.Node {
	return Page(PageConfig{Title: v.Title + " - Reach"},
		Header(Class("legal-header"),
			Div(Class("container"),
				A(Class("back-link"), Href("/"), g.Text("← Back to home")),
			),
		),
		Main(Class("container legal"),
			Nav(Class("legal-tabs"), Aria("label", "Legal documents"),
				g.Map(v.Tabs, func(t LegalTab) g.Node {
					cls := "legal-tab"
					if t.Active {
						cls += " active"
					}
					return A(Class(cls), Href(t.Href),
						g.If(t.Active, Aria("current", "page")),
						g.Text(t.Label),
					)
				}),
			),
			Article(Class("prose"), g.Raw(v.BodyHTML)),
		),
		Footer(Class("legal-footer"),
			Div(Class("container legal-footer-inner"),
				P(g.Text("© "+strconv.Itoa(v.Year)+" Reach")),
				Div(Class("legal-footer-links"),
					g.Map(v.Tabs, func(t LegalTab) g.Node {
						return A(Class("footer-link"), Href(t.Href), g.Text(t.Label))
					}),
				),
			),
		),
	)
}
