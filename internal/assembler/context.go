package assembler

import (
	"pageforge/internal/component"
	"pageforge/internal/section"
)

// Brand holds the business facts supplied by the authoring layer.
type Brand struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Tone        string `json:"tone"`
	Positioning string `json:"positioning"`
	Audience    string `json:"audience"`
}

// IndustryNorms are the inferred design conventions for an industry.
type IndustryNorms struct {
	Industry        string           `json:"industry"`
	PreferredStyles []string         `json:"preferred_styles"`
	ColorIntensity  string           `json:"color_intensity"`
	Formality       string           `json:"formality"`
	CommonPatterns  []component.Type `json:"common_patterns"`
}

// CompetitorPatterns summarizes layout patterns observed across analyzed
// competitor documents. Nil when no competitor data is available.
type CompetitorPatterns struct {
	DocumentsAnalyzed int                      `json:"documents_analyzed"`
	ComponentUsage    map[component.Type]float64 `json:"component_usage"`
	AvgCTACount       float64                  `json:"avg_cta_count"`
	CTAPlacement      string                   `json:"cta_placement"`
	VisualDensity     string                   `json:"visual_density"`
}

// UsageShare reports the fraction of analyzed competitor documents using
// a component. Zero when unknown.
func (c *CompetitorPatterns) UsageShare(t component.Type) float64 {
	if c == nil || c.ComponentUsage == nil {
		return 0
	}
	return c.ComponentUsage[t]
}

// BuyerIntent carries journey signals derived from the content brief.
type BuyerIntent struct {
	PrimaryGoal  string `json:"primary_goal"`
	JourneyStage string `json:"journey_stage"`
	SearchIntent string `json:"search_intent"`
	CTAIntensity string `json:"cta_intensity"`
}

// LearnedPreferences is the account's accumulated style-correction
// history: how often each component was swapped away from or toward,
// plus explicit prefer/avoid lists.
type LearnedPreferences struct {
	SwappedFrom map[component.Type]int `json:"swapped_from"`
	SwappedTo   map[component.Type]int `json:"swapped_to"`
	Preferred   []component.Type       `json:"preferred"`
	Avoided     []component.Type       `json:"avoided"`
}

// Context is the single consolidated input for selection and coherence.
// It is assembled once per generation and treated as immutable afterwards.
type Context struct {
	Sections    []section.Section
	Brand       Brand
	Norms       IndustryNorms
	Competitors *CompetitorPatterns
	Intent      *BuyerIntent
	Learned     *LearnedPreferences
}
