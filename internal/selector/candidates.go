package selector

import (
	"pageforge/internal/component"
	"pageforge/internal/section"
)

// candidates maps each semantic type to its plausible components,
// most appropriate first. The ordering is hand-authored product judgment
// and kept as a reviewable table.
var candidates = map[section.SectionType][]component.Type{
	section.TypeDefinition: {
		component.DefinitionBox, component.Prose, component.Callout, component.LeadParagraph,
	},
	section.TypeBenefits: {
		component.IconList, component.CardGrid, component.FeatureGrid,
		component.Checklist, component.BulletList,
	},
	section.TypeFeatures: {
		component.FeatureGrid, component.CardGrid, component.IconList,
		component.ComparisonTable, component.BulletList,
	},
	section.TypeProcess: {
		component.Timeline, component.NumberedSteps, component.StepCards,
		component.ProcessFlow, component.NumberedList,
	},
	section.TypeHowTo: {
		component.NumberedSteps, component.StepCards, component.Checklist,
		component.AccordionSteps, component.Prose,
	},
	section.TypeComparison: {
		component.ComparisonTable, component.ProsCons, component.BeforeAfter,
		component.DataTable, component.CardGrid,
	},
	section.TypeFAQ: {
		component.FAQAccordion, component.FAQCards, component.AccordionSteps, component.Prose,
	},
	section.TypeTestimonial: {
		component.TestimonialCard, component.TestimonialCarousel,
		component.PullQuote, component.CaseStudyCard,
	},
	section.TypePricing: {
		component.PricingTable, component.PricingCards,
		component.ComparisonTable, component.CardGrid,
	},
	section.TypeProblem: {
		component.Callout, component.Prose, component.StatHighlight, component.HighlightBox,
	},
	section.TypeSolution: {
		component.HighlightBox, component.FeatureGrid, component.Callout,
		component.StepCards, component.Prose,
	},
	section.TypeStatistics: {
		component.StatRow, component.StatHighlight, component.DataTable, component.Infographic,
	},
	section.TypeExample: {
		component.CaseStudyCard, component.Callout, component.ImageBlock, component.Prose,
	},
	section.TypeCaseStudy: {
		component.CaseStudyCard, component.StatHighlight,
		component.TestimonialCard, component.BeforeAfter,
	},
	section.TypeSummary: {
		component.HighlightBox, component.Callout, component.BulletList,
		component.CTABanner, component.Prose,
	},
	section.TypeCTA: {
		component.CTABanner, component.CTAInline, component.LeadForm, component.NewsletterSignup,
	},
	section.TypeBackground: {
		component.Prose, component.LeadParagraph, component.ImageBlock, component.Blockquote,
	},
}

// CandidatesFor returns the ordered candidate list for a semantic type.
// Unknown types fall back to the background candidates.
func CandidatesFor(t section.SectionType) []component.Type {
	if list, ok := candidates[t]; ok {
		return list
	}
	return candidates[section.TypeBackground]
}

// baseScore is derived from a candidate's position in its table: the top
// pick starts at 60 and each rank below loses 10, floored at 20.
func baseScore(rank int) float64 {
	score := 60.0 - 10.0*float64(rank)
	if score < 20 {
		return 20
	}
	return score
}
