package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageforge/internal/section"
)

func sampleAnalysis() section.Analysis {
	return section.Analysis{
		Title: "The Complete Guide to Widget Automation",
		Sections: []section.RawSection{
			{ID: "s1", Heading: "What is Widget Automation?", Body: "Widget automation refers to the practice of letting software assemble widgets.", WordCount: 60},
			{ID: "s2", Heading: "Benefits of Automating", Body: "It saves time and improves throughput.", Lists: []section.List{{Items: []string{"Faster cycles", "Fewer defects", "Lower cost", "Happier teams", "Better margins"}}}, WordCount: 90},
			{ID: "s3", Heading: "How It Works", Body: "First, the conveyor loads parts. Then, the arm welds them. Finally, inspection runs.", Lists: []section.List{{Items: []string{"Load", "Weld", "Inspect", "Ship"}, Ordered: true}}, HasStepCues: true, WordCount: 110},
			{ID: "s4", Heading: "Pricing Plans", Body: "Plans start at $99 per month with a free trial.", WordCount: 45},
			{ID: "s5", Heading: "Frequently Asked Questions", Body: "How long does setup take?\nMost teams finish in a day.", HasQAPairs: true, WordCount: 80},
			{ID: "s6", Heading: "Final Thoughts", Body: "To recap, automation pays for itself. Get started today.", WordCount: 50},
		},
	}
}

func TestParse_ClassificationTotality(t *testing.T) {
	sections := Parse(sampleAnalysis())
	require.Len(t, sections, 6)

	for _, s := range sections {
		assert.True(t, s.Type.Valid(), "section %s got unknown type %q", s.ID, s.Type)
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
}

func TestParse_ExpectedTypes(t *testing.T) {
	sections := Parse(sampleAnalysis())

	assert.Equal(t, section.TypeDefinition, sections[0].Type)
	assert.Equal(t, section.TypeBenefits, sections[1].Type)
	assert.Equal(t, section.TypeProcess, sections[2].Type)
	assert.Equal(t, section.TypePricing, sections[3].Type)
	assert.Equal(t, section.TypeFAQ, sections[4].Type)
	assert.Equal(t, section.TypeSummary, sections[5].Type)
}

func TestParse_PositionClasses(t *testing.T) {
	sections := Parse(sampleAnalysis())

	assert.Equal(t, section.PosIntro, sections[0].Position)
	for _, s := range sections[1 : len(sections)-1] {
		assert.Equal(t, section.PosBody, s.Position)
	}
	assert.Equal(t, section.PosConclusion, sections[len(sections)-1].Position)
}

func TestParse_NoSignalsFallsBackToBackground(t *testing.T) {
	sections := Parse(section.Analysis{
		Sections: []section.RawSection{
			{ID: "only", Heading: "", Body: ""},
		},
	})
	require.Len(t, sections, 1)
	// Position prior still votes on a single section, but an empty body
	// mid-document must never panic or produce an unknown type.
	assert.True(t, sections[0].Type.Valid())
}

func TestParse_EmptyBodySectionInMiddle(t *testing.T) {
	sections := Parse(section.Analysis{
		Sections: []section.RawSection{
			{ID: "a", Heading: "Intro", Body: "hello"},
			{ID: "b"},
			{ID: "c", Heading: "Summary", Body: "in summary, done"},
		},
	})
	require.Len(t, sections, 3)
	assert.Equal(t, section.TypeBackground, sections[1].Type)
	assert.Equal(t, 0.0, sections[1].Confidence)
}

func TestParse_Deterministic(t *testing.T) {
	a := Parse(sampleAnalysis())
	b := Parse(sampleAnalysis())
	assert.Equal(t, a, b)
}

func TestParse_RelationshipDerivation(t *testing.T) {
	sections := Parse(section.Analysis{
		Sections: []section.RawSection{
			{ID: "p", Heading: "The Problem with Manual Widgets", Body: "Teams struggle with costly mistakes."},
			{ID: "s", Heading: "Our Solution", Body: "That's where automation solves this."},
			{ID: "s2", Heading: "The Solution, Continued", Body: "It also eliminates rework."},
		},
	})
	require.Len(t, sections, 3)
	assert.Equal(t, section.RelNewTopic, sections[0].Relationship)
	assert.Equal(t, section.RelElaborates, sections[1].Relationship)
	assert.Equal(t, section.RelContinues, sections[2].Relationship)
}

func TestParse_GeneratesIDsWhenMissing(t *testing.T) {
	sections := Parse(section.Analysis{
		Sections: []section.RawSection{{Heading: "A", Body: "text"}, {Heading: "B", Body: "text"}},
	})
	assert.Equal(t, "section-1", sections[0].ID)
	assert.Equal(t, "section-2", sections[1].ID)
}

func TestExtractDefinitions(t *testing.T) {
	defs := extractDefinitions([]string{
		"Widget automation is defined as the use of software to assemble widgets. It grew popular in 2019.",
		"No definitions here.",
	})
	require.Len(t, defs, 1)
	assert.Equal(t, "Widget automation", defs[0].Term)
	assert.Contains(t, defs[0].Text, "use of software")
}
