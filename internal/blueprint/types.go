package blueprint

import (
	"time"

	"pageforge/internal/section"
	"pageforge/internal/selector"
)

// SchemaVersion tags the blueprint document shape for persistence.
const SchemaVersion = "1.0"

// PageStrategy holds the document-level decisions, computed once per
// generation and stable for the life of one blueprint version.
type PageStrategy struct {
	VisualStyle    string `json:"visual_style"`
	Pacing         string `json:"pacing"` // dense, balanced, spacious
	ColorIntensity string `json:"color_intensity"`
	PrimaryGoal    string `json:"primary_goal"`
	JourneyStage   string `json:"journey_stage"`
	Reasoning      string `json:"reasoning"`
}

// SectionDesign pairs one source section with its presentation choice.
type SectionDesign struct {
	SectionID  string              `json:"section_id"`
	Heading    string              `json:"heading,omitempty"`
	Type       section.SectionType `json:"type"`
	Importance section.Importance  `json:"importance"`
	Selection  selector.Selection  `json:"selection"`
}

// GlobalElements are the document-wide furniture decisions.
type GlobalElements struct {
	ShowTOC          bool   `json:"show_toc"`
	TOCPosition      string `json:"toc_position,omitempty"`
	ShowAuthorBox    bool   `json:"show_author_box"`
	CTAPlacement     string `json:"cta_placement"`
	CTAIntensity     string `json:"cta_intensity"`
	CTAStyle         string `json:"cta_style"`
	ShowSources      bool   `json:"show_sources"`
	ShowRelated      bool   `json:"show_related"`
}

// Metadata records how a blueprint was produced.
type Metadata struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	Mode         string        `json:"mode"` // heuristic or ai
	Duration     time.Duration `json:"duration"`
	SectionCount int           `json:"section_count"`
	WordCount    int           `json:"word_count"`
	InputsHash   string        `json:"inputs_hash"`
}

// Blueprint is the versioned unit of persistence: everything a renderer
// needs to present one document. Regeneration creates a new version and
// never mutates an old one.
type Blueprint struct {
	Schema     string          `json:"schema"`
	ID         string          `json:"id"`
	DocumentID string          `json:"document_id"`
	Version    int             `json:"version"`
	Strategy   PageStrategy    `json:"strategy"`
	Sections   []SectionDesign `json:"sections"`
	Global     GlobalElements  `json:"global"`
	Meta       Metadata        `json:"meta"`
}
