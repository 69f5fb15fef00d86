package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotFoundPage is rendered for any path without a route
func NotFoundPage(path string) g.Node {
	return Page(PageConfig{Title: "Page not found - Reach"},
		Main(Class("container error-page"),
			H1(Class("error-code"), g.Text("404")),
			P(Class("section-lead"), g.Text("Oops! Page not found")),
			P(Class("muted small"), Code(g.Text(path))),
			A(Class("btn btn-primary"), Href("/"), g.Text("Return to Home")),
		),
	)
}

// ServerErrorPage is rendered after a handler panic or a failed render
func ServerErrorPage() g.Node {
	return Page(PageConfig{Title: "Something went wrong - Reach"},
		Main(Class("container error-page"),
			H1(Class("error-code"), g.Text("500")),
			P(Class("section-lead"), g.Text("Something went wrong on our side.")),
			A(Class("btn btn-primary"), Href("/"), g.Text("Return to Home")),
		),
	)
}
