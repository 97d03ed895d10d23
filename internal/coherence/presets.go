package coherence

import "pageforge/internal/component"

// Preset is the per-style rule set the engine enforces. One preset per
// visual style; values are hand-authored and reviewed as a table.
type Preset struct {
	Style              string
	SpacingCycle       []string
	BreatheBefore      map[component.Type]bool
	BackgroundStrategy string // alternating, every-third, feature-only
	MaxConsecutiveBG   int
	AlwaysBackground   map[component.Type]bool
	NeverBackground    map[component.Type]bool
	MaxFeatured        int
	EmphasisPlacement  string // start, middle, end, distributed
	DividerStrategy    string // none, before-components, between-groups
	DividerBefore      map[component.Type]bool
}

var conversionSet = map[component.Type]bool{
	component.CTABanner: true, component.LeadForm: true,
	component.PricingTable: true, component.PricingCards: true,
	component.NewsletterSignup: true,
}

var quietSet = map[component.Type]bool{
	component.Prose: true, component.Blockquote: true,
	component.SourcesList: true, component.GlossaryList: true,
	component.AnchorLinks: true, component.BreadcrumbTrail: true,
}

var presets = map[string]Preset{
	"editorial": {
		Style:              "editorial",
		SpacingCycle:       []string{"spacious", "normal", "normal"},
		BreatheBefore:      map[component.Type]bool{component.PullQuote: true, component.ImageBlock: true},
		BackgroundStrategy: "feature-only",
		MaxConsecutiveBG:   1,
		NeverBackground:    quietSet,
		MaxFeatured:        2,
		EmphasisPlacement:  "middle",
		DividerStrategy:    "between-groups",
	},
	"marketing": {
		Style:              "marketing",
		SpacingCycle:       []string{"normal", "compact", "normal", "spacious"},
		BreatheBefore:      map[component.Type]bool{component.CTABanner: true, component.PricingCards: true, component.PricingTable: true},
		BackgroundStrategy: "alternating",
		MaxConsecutiveBG:   2,
		AlwaysBackground:   conversionSet,
		NeverBackground:    map[component.Type]bool{component.Blockquote: true},
		MaxFeatured:        3,
		EmphasisPlacement:  "distributed",
		DividerStrategy:    "none",
	},
	"minimal": {
		Style:              "minimal",
		SpacingCycle:       []string{"spacious"},
		BackgroundStrategy: "feature-only",
		MaxConsecutiveBG:   1,
		NeverBackground:    quietSet,
		MaxFeatured:        1,
		EmphasisPlacement:  "middle",
		DividerStrategy:    "before-components",
		DividerBefore:      map[component.Type]bool{component.FAQAccordion: true, component.SourcesList: true},
	},
	"bold": {
		Style:              "bold",
		SpacingCycle:       []string{"compact", "normal"},
		BreatheBefore:      map[component.Type]bool{component.StatHighlight: true, component.CTABanner: true},
		BackgroundStrategy: "every-third",
		MaxConsecutiveBG:   2,
		AlwaysBackground:   map[component.Type]bool{component.StatHighlight: true, component.CTABanner: true, component.BeforeAfter: true},
		MaxFeatured:        4,
		EmphasisPlacement:  "start",
		DividerStrategy:    "none",
	},
	"warm-modern": {
		Style:              "warm-modern",
		SpacingCycle:       []string{"normal", "spacious"},
		BreatheBefore:      map[component.Type]bool{component.TestimonialCard: true},
		BackgroundStrategy: "every-third",
		MaxConsecutiveBG:   1,
		NeverBackground:    map[component.Type]bool{component.Prose: true},
		MaxFeatured:        2,
		EmphasisPlacement:  "end",
		DividerStrategy:    "between-groups",
	},
}

// PresetFor returns the rule set for a visual style, defaulting to the
// editorial preset for unknown styles.
func PresetFor(style string) Preset {
	if p, ok := presets[style]; ok {
		return p
	}
	return presets["editorial"]
}

// Styles lists the known visual styles.
func Styles() []string {
	return []string{"editorial", "marketing", "minimal", "bold", "warm-modern"}
}
