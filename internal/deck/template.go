package deck

import "fmt"

// Fallbacks for the optional generator inputs.
const (
	defaultIndustry  = "technology"
	defaultStage     = "Seed"
	defaultAskAmount = "$2M"
	defaultTraction  = "Growing rapidly"
)

// GenerateInput holds the template generator parameters. CompanyName and
// Description are required by the tool schema; the rest default to fixed
// fallback strings when empty.
type GenerateInput struct {
	CompanyName string
	Description string
	Industry    string
	Stage       string
	AskAmount   string
	Traction    string
}

// newDeckFromTemplate composes the fixed nine-slide pitch deck narrative,
// substituting the caller's parameters into canned prose. The market,
// business model, and traction figures are illustrative placeholders and
// are intentionally not derived from input.
func newDeckFromTemplate(in GenerateInput, theme string) *Deck {
	industry := in.Industry
	if industry == "" {
		industry = defaultIndustry
	}
	stage := in.Stage
	if stage == "" {
		stage = defaultStage
	}
	ask := in.AskAmount
	if ask == "" {
		ask = defaultAskAmount
	}
	traction := in.Traction
	if traction == "" {
		traction = defaultTraction
	}

	slides := []Slide{
		NewSlide("title", in.CompanyName, SlideSpec{
			Subtitle: in.Description,
			Icon:     "🚀",
		}),
		NewSlide("problem", "The Problem", SlideSpec{
			Content: fmt.Sprintf("The %s industry faces critical challenges that existing solutions fail to address.", industry),
			Bullets: []string{
				"Current solutions are fragmented and outdated",
				"Users waste significant time on manual processes",
				"No unified platform addresses the full workflow",
			},
			Icon: "🔥",
		}),
		NewSlide("solution", "Our Solution", SlideSpec{
			Content: fmt.Sprintf("%s %s. We provide a seamless, integrated platform that transforms how people work.", in.CompanyName, in.Description),
			Bullets: []string{
				"AI-powered automation eliminates manual work",
				"Unified platform replaces 5+ point solutions",
				"Real-time insights drive better decisions",
			},
			Icon: "💡",
		}),
		NewSlide("market", "Market Opportunity", SlideSpec{
			Content: fmt.Sprintf("The %s market is massive and growing rapidly.", industry),
			Metrics: []Metric{
				{Label: "TAM", Value: "$50B+", Description: "Total addressable market"},
				{Label: "SAM", Value: "$8B", Description: "Serviceable addressable market"},
				{Label: "SOM", Value: "$500M", Description: "Serviceable obtainable market"},
			},
			Icon: "📊",
		}),
		NewSlide("product", "The Product", SlideSpec{
			Content: fmt.Sprintf("A brief walkthrough of %s's core product experience.", in.CompanyName),
			Bullets: []string{
				"Intuitive onboarding — get started in under 2 minutes",
				"AI-powered core workflow that saves 10+ hours/week",
				"Dashboard with real-time analytics and insights",
				"Integrations with the tools teams already use",
			},
			Icon: "📱",
		}),
		NewSlide("business_model", "Business Model", SlideSpec{
			Content: "SaaS subscription model with strong unit economics.",
			Metrics: []Metric{
				{Label: "ACV", Value: "$12K", Description: "Average contract value"},
				{Label: "Gross Margin", Value: "85%", Description: "Software margins"},
				{Label: "LTV:CAC", Value: "5:1", Description: "Efficient growth"},
			},
			Icon: "💰",
		}),
		NewSlide("traction", "Traction", SlideSpec{
			Content: traction,
			Metrics: []Metric{
				{Label: "Users", Value: "10K+", Description: "Active monthly users"},
				{Label: "Revenue", Value: "$500K ARR", Description: "Annual recurring revenue"},
				{Label: "Growth", Value: "3x YoY", Description: "Year-over-year growth"},
			},
			Icon: "📈",
		}),
		NewSlide("team", "The Team", SlideSpec{
			Content: "Experienced founders with deep domain expertise.",
			Bullets: []string{
				"CEO — 10+ years in the industry, ex-FAANG",
				"CTO — ML/AI expert, PhD Stanford",
				"VP Sales — Built $50M pipeline at previous startup",
			},
			Icon: "👥",
		}),
		NewSlide("ask", "The Ask", SlideSpec{
			Content: fmt.Sprintf("Raising %s %s round to accelerate growth.", ask, stage),
			Metrics: []Metric{
				{Label: "Raising", Value: ask, Description: fmt.Sprintf("%s round", stage)},
				{Label: "Use: Product", Value: "40%", Description: "Engineering & product"},
				{Label: "Use: Growth", Value: "35%", Description: "Sales & marketing"},
				{Label: "Use: Ops", Value: "25%", Description: "Team & operations"},
			},
			Icon: "🎯",
		}),
	}

	return &Deck{
		ID:          newID(),
		CompanyName: in.CompanyName,
		Tagline:     in.Description,
		Theme:       theme,
		Slides:      slides,
	}
}
