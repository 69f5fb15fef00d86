package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/reachx/reach-site/pkg/content"
)

// HomeView is the data behind the landing page
type HomeView struct {
	Version string
	Billing content.Billing
	Year    int
}

// HomePage renders the landing page
func HomePage(v HomeView) g.Node {
	return Page(PageConfig{Title: "Reach - Infrastructure for Minecraft creators"},
		Navbar(),
		Main(
			landingHero(v.Version),
			marquee(),
			security(),
			launcher(),
			benefits(),
			Pricing(v.Billing),
			partners(),
			journey(),
			cta(),
		),
		SiteFooter(v.Year),
	)
}

func landingHero(version string) g.Node {
	return Section(Class("hero"), ID("top"),
		Div(Class("hero-grid-bg")),
		Div(Class("container hero-inner"),
			Div(Class("hero-copy"),
				Span(Class("badge"), g.Text("Beta v"+version+" - Now Available")),
				H1(Class("hero-title"),
					Span(Class("block"), g.Text("Fast.")),
					Span(Class("block muted"), g.Text("Reliable.")),
					Span(Class("block"), g.Text("Secure.")),
				),
				P(Class("hero-lead"),
					g.Text("The professional infrastructure platform for Minecraft studios and creators. Build, manage, and distribute experiences with enterprise-grade security."),
				),
				Div(Class("hero-actions"),
					A(Class("btn btn-primary btn-lg"), Href("/downloads"), g.Text("Get Reach Launcher")),
					A(Class("btn btn-outline btn-lg"), Href("#pricing"), g.Text("Start your journey")),
				),
				Ul(Class("hero-checks"),
					Li(g.Text("No hidden fees")),
					Li(g.Text("Enterprise security")),
				),
			),
			Div(Class("hero-preview card"),
				Div(Class("preview-head"),
					Span(Class("logo-mark"), g.Text("R")),
					Div(
						P(Class("preview-title"), g.Text("Reach Dashboard")),
						P(Class("muted small"), g.Text("v"+version)),
					),
					Span(Class("pill pill-online"), g.Text("Online")),
				),
				statCards(content.HeroStats),
			),
		),
	)
}

func marquee() g.Node {
	// Words are listed twice so the CSS loop can scroll by half its width
	words := append(append([]string{}, content.MarqueeWords...), content.MarqueeWords...)
	return Section(Class("marquee"), Aria("hidden", "true"),
		Div(Class("marquee-track"),
			g.Map(words, func(w string) g.Node {
				return Span(Class("marquee-word"), g.Text(w))
			}),
		),
	)
}

func featureCards(features []content.Feature) g.Node {
	return Div(Class("cards cards-3"),
		g.Map(features, func(f content.Feature) g.Node {
			return Div(Class("card"),
				H3(Class("card-title"), g.Text(f.Title)),
				P(Class("card-body"), g.Text(f.Description)),
				g.If(f.Highlight != "", Span(Class("card-highlight"), g.Text(f.Highlight))),
			)
		}),
	)
}

func security() g.Node {
	return Section(Class("section"), ID("features"),
		Div(Class("container"),
			sectionHeading("Security", "Built to protect what you create",
				"Encryption, leak protection and ownership controls at every layer."),
			featureCards(content.SecurityFeatures),
		),
	)
}

func launcher() g.Node {
	return Section(Class("section section-split"), ID("launcher"),
		Div(Class("container split"),
			Div(
				sectionHeading("Launcher", "Native performance, zero compromise",
					"The Reach Launcher is written in Rust and starts your experience in milliseconds."),
				Ul(Class("highlights"),
					g.Map(content.LauncherHighlights, func(h string) g.Node {
						return Li(Class("highlight"), g.Text(h))
					}),
				),
				A(Class("btn btn-primary"), Href("/downloads"), g.Text("Download the launcher")),
			),
			Pre(Class("code-card"),
				Code(g.Text("// Reach Launcher - Native Performance\nlet launcher = Launcher::new()\n    .with_encryption(ReachC::default())\n    .with_protection(Rpb::strict())\n    .boot()?;")),
			),
		),
	)
}

func benefits() g.Node {
	return Section(Class("section"), ID("benefits"),
		Div(Class("container"),
			sectionHeading("Benefits", "Everything your studio needs", ""),
			featureCards(content.Benefits),
		),
	)
}

// PricingToggleHref is the link that selects a billing period
func PricingToggleHref(b content.Billing) string {
	return "/?billing=" + string(b) + "#pricing"
}

// Pricing renders the plan grid for the selected billing period.
// The toggle is a pair of links so it works without scripts.
func Pricing(billing content.Billing) g.Node {
	yearly := billing == content.Yearly

	return Section(Class("section pricing"), ID("pricing"),
		Div(Class("container"),
			sectionHeading("Simple Pricing", "Choose your plan",
				"Start free, scale as you grow. No hidden fees, cancel anytime."),
			Div(Class("billing-toggle"), Role("group"), Aria("label", "Billing period"),
				A(Href(PricingToggleHref(content.Monthly)),
					Class(toggleClass(!yearly)),
					g.If(!yearly, Aria("current", "true")),
					g.Text("Monthly"),
				),
				A(Href(PricingToggleHref(content.Yearly)),
					Class(toggleClass(yearly)),
					g.If(yearly, Aria("current", "true")),
					g.Text("Yearly"),
					Span(Class("save-badge"), g.Text("Save 20%")),
				),
			),
			Div(Class("cards cards-3 plans"),
				g.Map(content.PricePlans(billing), planCard),
			),
		),
	)
}

func toggleClass(active bool) string {
	if active {
		return "toggle-option active"
	}
	return "toggle-option"
}

func planCard(p content.PricedPlan) g.Node {
	cardClass := "card plan"
	buttonClass := "btn btn-outline btn-block"
	if p.Popular {
		cardClass += " plan-popular"
		buttonClass = "btn btn-primary btn-block"
	}

	return Div(Class(cardClass), Data("plan", p.Name),
		g.If(p.Popular, Span(Class("plan-badge"), g.Text("Most Popular"))),
		H3(Class("plan-name"), g.Text(p.Name)),
		P(Class("muted small"), g.Text(p.Description)),
		Div(Class("plan-price"),
			Span(Class("plan-amount"), g.Text("$"+strconv.Itoa(p.Amount))),
			Span(Class("muted"), g.Text("/mo")),
		),
		g.If(p.Billing == content.Yearly, P(Class("muted small"), g.Text("Billed annually"))),
		Ul(Class("plan-features"),
			g.Map(p.Features, func(f string) g.Node {
				return Li(Class("plan-feature"), g.Text(f))
			}),
		),
		A(Class(buttonClass), Href("/downloads"), g.Text(p.CTA)),
	)
}

func partners() g.Node {
	return Section(Class("section partners"),
		Div(Class("container"),
			P(Class("eyebrow center"), g.Text("Powered by industry leaders")),
			Div(Class("partner-row"),
				g.Map(content.Partners, func(p content.Partner) g.Node {
					return Div(Class("partner"),
						Span(Class("partner-mark"), Aria("hidden", "true"), g.Text(p.Mark)),
						Span(Class("partner-name"), g.Text(p.Name)),
					)
				}),
			),
		),
	)
}

func journey() g.Node {
	return Section(Class("section journey"), ID("journey"),
		Div(Class("container"),
			sectionHeading("Your journey", "From idea to millions of players", ""),
			Ol(Class("journey-steps"),
				g.Map(content.JourneySteps, func(s content.Step) g.Node {
					return Li(Class("journey-step card"),
						Span(Class("journey-number"), g.Text(s.Number)),
						H3(Class("card-title"), g.Text(s.Title)),
						P(Class("card-body"), g.Text(s.Description)),
					)
				}),
			),
			A(Class("btn btn-outline"), Href("#pricing"), g.Text("See plans")),
		),
	)
}

func cta() g.Node {
	return Section(Class("section cta"), ID("docs"),
		Div(Class("container cta-inner"),
			H2(Class("section-title"), g.Text("Ready to reach further?")),
			P(Class("section-lead"), g.Text("Join the studios building the next generation of Minecraft experiences.")),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary btn-lg"), Href("/downloads"), g.Text("Get started")),
				A(Class("btn btn-outline btn-lg"), Href("#pricing"), g.Text("View pricing")),
			),
		),
	)
}
