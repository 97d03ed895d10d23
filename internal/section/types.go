package section

// SectionType is the communicative role a content section plays.
type SectionType string

const (
	TypeDefinition  SectionType = "definition"
	TypeBenefits    SectionType = "benefits"
	TypeFeatures    SectionType = "features"
	TypeProcess     SectionType = "process"
	TypeHowTo       SectionType = "how-to"
	TypeComparison  SectionType = "comparison"
	TypeFAQ         SectionType = "faq"
	TypeTestimonial SectionType = "testimonial"
	TypePricing     SectionType = "pricing"
	TypeProblem     SectionType = "problem"
	TypeSolution    SectionType = "solution"
	TypeStatistics  SectionType = "statistics"
	TypeExample     SectionType = "example"
	TypeCaseStudy   SectionType = "case-study"
	TypeSummary     SectionType = "summary"
	TypeCTA         SectionType = "cta"
	TypeBackground  SectionType = "background"
)

// AllTypes lists every section type in the closed set.
func AllTypes() []SectionType {
	return []SectionType{
		TypeDefinition, TypeBenefits, TypeFeatures, TypeProcess, TypeHowTo,
		TypeComparison, TypeFAQ, TypeTestimonial, TypePricing, TypeProblem,
		TypeSolution, TypeStatistics, TypeExample, TypeCaseStudy, TypeSummary,
		TypeCTA, TypeBackground,
	}
}

func (t SectionType) Valid() bool {
	for _, v := range AllTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Relationship describes how a section relates to the one before it.
type Relationship string

const (
	RelContinues  Relationship = "continues"
	RelContrasts  Relationship = "contrasts"
	RelElaborates Relationship = "elaborates"
	RelNewTopic   Relationship = "new-topic"
)

// Position classifies where a section sits in the document.
type Position string

const (
	PosIntro      Position = "intro"
	PosBody       Position = "body"
	PosConclusion Position = "conclusion"
)

// Importance classifies how central a section is to the document.
type Importance string

const (
	ImpSupporting  Importance = "supporting"
	ImpCore        Importance = "core"
	ImpKeyTakeaway Importance = "key-takeaway"
)

// List is a detected list inside a section.
type List struct {
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered"`
}

// Definition is an inline term definition found in body text.
type Definition struct {
	Term string `json:"term"`
	Text string `json:"text"`
}

// Content is the parsed sub-structure of one section.
type Content struct {
	Paragraphs  []string     `json:"paragraphs"`
	Lists       []List       `json:"lists,omitempty"`
	Quotes      []string     `json:"quotes,omitempty"`
	Definitions []Definition `json:"definitions,omitempty"`
}

// Section is one semantically coherent unit of source content.
// Sections are built once per parse and never mutated afterwards.
type Section struct {
	ID           string       `json:"id"`
	Heading      string       `json:"heading,omitempty"`
	HeadingLevel int          `json:"heading_level,omitempty"`
	Raw          string       `json:"raw"`
	Type         SectionType  `json:"type"`
	Confidence   float64      `json:"confidence"`
	Content      Content      `json:"content"`
	Relationship Relationship `json:"relationship"`
	Position     Position     `json:"position"`
	Importance   Importance   `json:"importance"`
	WordCount    int          `json:"word_count"`
}

// RawSection is one pre-split unit handed over by the content analyzer,
// before semantic classification.
type RawSection struct {
	ID           string   `json:"id"`
	Heading      string   `json:"heading,omitempty"`
	HeadingLevel int      `json:"heading_level,omitempty"`
	Body         string   `json:"body"`
	Lists        []List   `json:"lists,omitempty"`
	Quotes       []string `json:"quotes,omitempty"`
	HasQAPairs   bool     `json:"has_qa_pairs,omitempty"`
	HasStepCues  bool     `json:"has_step_cues,omitempty"`
	WordCount    int      `json:"word_count,omitempty"`
}

// Analysis is the structural analysis the content analyzer computes upstream.
type Analysis struct {
	Title      string       `json:"title"`
	Sections   []RawSection `json:"sections"`
	WordCount  int          `json:"word_count,omitempty"`
	FAQCount   int          `json:"faq_count,omitempty"`
	ImageCount int          `json:"image_count,omitempty"`
}
