package content

import "strings"

// Billing selects which price a plan displays
type Billing string

const (
	Monthly Billing = "monthly"
	Yearly  Billing = "yearly"
)

// ParseBilling maps a query value to a Billing, defaulting to monthly
func ParseBilling(s string) Billing {
	if strings.EqualFold(strings.TrimSpace(s), string(Yearly)) {
		return Yearly
	}
	return Monthly
}

// Plan is a pricing tier. Prices are whole dollars per month.
type Plan struct {
	Name         string
	Description  string
	MonthlyPrice int
	YearlyPrice  int
	Features     []string
	CTA          string
	Popular      bool
}

// Price returns the per-month figure for the billing period
func (p Plan) Price(b Billing) int {
	if b == Yearly {
		return p.YearlyPrice
	}
	return p.MonthlyPrice
}

var Plans = []Plan{
	{
		Name:         "Hobby",
		Description:  "For enthusiasts and proof of concept",
		MonthlyPrice: 5,
		YearlyPrice:  4,
		Features: []string{
			"1 project",
			"5GB storage",
			"Basic encryption",
			"Community support",
			"7-day backup retention",
		},
		CTA: "Start Free Trial",
	},
	{
		Name:         "Standard",
		Description:  "For small teams and growing projects",
		MonthlyPrice: 25,
		YearlyPrice:  20,
		Features: []string{
			"10 projects",
			"50GB storage",
			"ReachC encryption",
			"RPB protection",
			"Priority support",
			"30-day backup retention",
			"Discord integration",
		},
		CTA:     "Get Started",
		Popular: true,
	},
	{
		Name:         "Pro",
		Description:  "For professional studios and events",
		MonthlyPrice: 45,
		YearlyPrice:  36,
		Features: []string{
			"Unlimited projects",
			"500GB storage",
			"Advanced ReachC",
			"Full RPB suite",
			"24/7 dedicated support",
			"90-day backup retention",
			"Custom integrations",
			"White-label options",
		},
		CTA: "Contact Sales",
	},
}

// PricedPlan is a plan resolved against a billing period for rendering
type PricedPlan struct {
	Plan
	Amount  int
	Billing Billing
}

// PricePlans resolves every plan in order for the billing period
func PricePlans(b Billing) []PricedPlan {
	priced := make([]PricedPlan, 0, len(Plans))
	for _, p := range Plans {
		priced = append(priced, PricedPlan{Plan: p, Amount: p.Price(b), Billing: b})
	}
	return priced
}
