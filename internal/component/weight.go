package component

// Weight is the coarse three-tier classification of how visually dominant
// a component is. The assignments are hand-authored product judgment and
// intentionally kept as a reviewable table.
type Weight string

const (
	WeightLight  Weight = "light"
	WeightMedium Weight = "medium"
	WeightHeavy  Weight = "heavy"
)

var weights = map[Type]Weight{
	Prose:         WeightLight,
	LeadParagraph: WeightLight,
	Blockquote:    WeightLight,
	BulletList:    WeightLight,
	NumberedList:  WeightLight,
	Checklist:     WeightLight,
	AnchorLinks:   WeightLight,
	BreadcrumbTrail: WeightLight,
	DefinitionBox: WeightLight,
	SourcesList:   WeightLight,
	GlossaryList:  WeightLight,

	Callout:         WeightMedium,
	PullQuote:       WeightMedium,
	HighlightBox:    WeightMedium,
	IconList:        WeightMedium,
	NumberedSteps:   WeightMedium,
	AccordionSteps:  WeightMedium,
	ProsCons:        WeightMedium,
	DataTable:       WeightMedium,
	StatRow:         WeightMedium,
	TestimonialCard: WeightMedium,
	ReviewStars:     WeightMedium,
	TrustBadges:     WeightMedium,
	ImageBlock:      WeightMedium,
	CTAInline:       WeightMedium,
	TableOfContents: WeightMedium,
	RelatedArticles: WeightMedium,
	FAQAccordion:    WeightMedium,
	AuthorBio:       WeightMedium,

	CardGrid:            WeightHeavy,
	FeatureGrid:         WeightHeavy,
	Timeline:            WeightHeavy,
	StepCards:           WeightHeavy,
	ProcessFlow:         WeightHeavy,
	ComparisonTable:     WeightHeavy,
	StatHighlight:       WeightHeavy,
	BeforeAfter:         WeightHeavy,
	TestimonialCarousel: WeightHeavy,
	LogoWall:            WeightHeavy,
	CaseStudyCard:       WeightHeavy,
	ImageGallery:        WeightHeavy,
	VideoEmbed:          WeightHeavy,
	Infographic:         WeightHeavy,
	DiagramBlock:        WeightHeavy,
	CTABanner:           WeightHeavy,
	PricingTable:        WeightHeavy,
	PricingCards:        WeightHeavy,
	LeadForm:            WeightHeavy,
	NewsletterSignup:    WeightHeavy,
	FAQCards:            WeightHeavy,
}

// WeightOf returns the visual weight of a component. Unknown components
// fall back to medium instead of erroring.
func WeightOf(t Type) Weight {
	if w, ok := weights[t]; ok {
		return w
	}
	return WeightMedium
}
