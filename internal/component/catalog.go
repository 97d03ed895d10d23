package component

// Type identifies one presentation component from the closed catalog.
type Type string

// Core content.
const (
	Prose         Type = "prose"
	LeadParagraph Type = "lead-paragraph"
	Callout       Type = "callout"
	Blockquote    Type = "blockquote"
	PullQuote     Type = "pull-quote"
	HighlightBox  Type = "highlight-box"
)

// Lists.
const (
	BulletList   Type = "bullet-list"
	NumberedList Type = "numbered-list"
	Checklist    Type = "checklist"
	IconList     Type = "icon-list"
	CardGrid     Type = "card-grid"
	FeatureGrid  Type = "feature-grid"
)

// Process and structure.
const (
	Timeline       Type = "timeline"
	StepCards      Type = "step-cards"
	NumberedSteps  Type = "numbered-steps"
	ProcessFlow    Type = "process-flow"
	AccordionSteps Type = "accordion-steps"
)

// Comparison and data.
const (
	ComparisonTable Type = "comparison-table"
	ProsCons        Type = "pros-cons"
	DataTable       Type = "data-table"
	StatRow         Type = "stat-row"
	StatHighlight   Type = "stat-highlight"
	BeforeAfter     Type = "before-after"
)

// Trust and proof.
const (
	TestimonialCard     Type = "testimonial-card"
	TestimonialCarousel Type = "testimonial-carousel"
	LogoWall            Type = "logo-wall"
	CaseStudyCard       Type = "case-study-card"
	ReviewStars         Type = "review-stars"
	TrustBadges         Type = "trust-badges"
)

// Media.
const (
	ImageBlock   Type = "image-block"
	ImageGallery Type = "image-gallery"
	VideoEmbed   Type = "video-embed"
	Infographic  Type = "infographic"
	DiagramBlock Type = "diagram-block"
)

// Conversion.
const (
	CTABanner        Type = "cta-banner"
	CTAInline        Type = "cta-inline"
	PricingTable     Type = "pricing-table"
	PricingCards     Type = "pricing-cards"
	LeadForm         Type = "lead-form"
	NewsletterSignup Type = "newsletter-signup"
)

// Navigation.
const (
	TableOfContents Type = "table-of-contents"
	AnchorLinks     Type = "anchor-links"
	RelatedArticles Type = "related-articles"
	BreadcrumbTrail Type = "breadcrumb-trail"
)

// Specialized.
const (
	FAQAccordion  Type = "faq-accordion"
	FAQCards      Type = "faq-cards"
	DefinitionBox Type = "definition-box"
	GlossaryList  Type = "glossary-list"
	AuthorBio     Type = "author-bio"
	SourcesList   Type = "sources-list"
)

// Category groups catalog entries for reporting and candidate tables.
type Category string

const (
	CatCore        Category = "core-content"
	CatLists       Category = "lists"
	CatProcess     Category = "process-structure"
	CatComparison  Category = "comparison-data"
	CatTrust       Category = "trust-proof"
	CatMedia       Category = "media"
	CatConversion  Category = "conversion"
	CatNavigation  Category = "navigation"
	CatSpecialized Category = "specialized"
)

var categories = map[Type]Category{
	Prose: CatCore, LeadParagraph: CatCore, Callout: CatCore,
	Blockquote: CatCore, PullQuote: CatCore, HighlightBox: CatCore,

	BulletList: CatLists, NumberedList: CatLists, Checklist: CatLists,
	IconList: CatLists, CardGrid: CatLists, FeatureGrid: CatLists,

	Timeline: CatProcess, StepCards: CatProcess, NumberedSteps: CatProcess,
	ProcessFlow: CatProcess, AccordionSteps: CatProcess,

	ComparisonTable: CatComparison, ProsCons: CatComparison,
	DataTable: CatComparison, StatRow: CatComparison,
	StatHighlight: CatComparison, BeforeAfter: CatComparison,

	TestimonialCard: CatTrust, TestimonialCarousel: CatTrust,
	LogoWall: CatTrust, CaseStudyCard: CatTrust, ReviewStars: CatTrust,
	TrustBadges: CatTrust,

	ImageBlock: CatMedia, ImageGallery: CatMedia, VideoEmbed: CatMedia,
	Infographic: CatMedia, DiagramBlock: CatMedia,

	CTABanner: CatConversion, CTAInline: CatConversion,
	PricingTable: CatConversion, PricingCards: CatConversion,
	LeadForm: CatConversion, NewsletterSignup: CatConversion,

	TableOfContents: CatNavigation, AnchorLinks: CatNavigation,
	RelatedArticles: CatNavigation, BreadcrumbTrail: CatNavigation,

	FAQAccordion: CatSpecialized, FAQCards: CatSpecialized,
	DefinitionBox: CatSpecialized, GlossaryList: CatSpecialized,
	AuthorBio: CatSpecialized, SourcesList: CatSpecialized,
}

// CategoryOf returns the catalog category for a component. Unknown
// components report as core-content rather than erroring.
func CategoryOf(t Type) Category {
	if c, ok := categories[t]; ok {
		return c
	}
	return CatCore
}

// All returns every component in the catalog.
func All() []Type {
	out := make([]Type, 0, len(categories))
	for t := range categories {
		out = append(out, t)
	}
	return out
}

func (t Type) Valid() bool {
	_, ok := categories[t]
	return ok
}
