package assembler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageforge/internal/component"
	"pageforge/internal/section"
)

type fakeCompetitors struct {
	patterns *CompetitorPatterns
	err      error
}

func (f fakeCompetitors) CompetitorPatterns(context.Context, string) (*CompetitorPatterns, error) {
	return f.patterns, f.err
}

type fakePreferences struct {
	learned *LearnedPreferences
	err     error
}

func (f fakePreferences) LearnedPreferences(context.Context, string) (*LearnedPreferences, error) {
	return f.learned, f.err
}

type fakeBriefs struct {
	intent *BuyerIntent
	err    error
}

func (f fakeBriefs) BuyerIntent(context.Context, string) (*BuyerIntent, error) {
	return f.intent, f.err
}

func someSections() []section.Section {
	return []section.Section{
		{ID: "a", Type: section.TypeDefinition},
		{ID: "b", Type: section.TypeBenefits},
	}
}

func TestAssemble_NoSources(t *testing.T) {
	a := New()
	got := a.Assemble(context.Background(), "acct", "doc", someSections(), Brand{Industry: "saas"})

	assert.Len(t, got.Sections, 2)
	assert.Equal(t, "saas", got.Norms.Industry)
	assert.Nil(t, got.Competitors)
	assert.Nil(t, got.Learned)
	assert.Nil(t, got.Intent)
}

func TestAssemble_AllSourcesResolve(t *testing.T) {
	a := New(
		WithCompetitorSource(fakeCompetitors{patterns: &CompetitorPatterns{DocumentsAnalyzed: 12}}),
		WithPreferenceSource(fakePreferences{learned: &LearnedPreferences{Preferred: []component.Type{component.IconList}}}),
		WithBriefSource(fakeBriefs{intent: &BuyerIntent{JourneyStage: "decision"}}),
	)
	got := a.Assemble(context.Background(), "acct", "doc", someSections(), Brand{Industry: "finance"})

	require.NotNil(t, got.Competitors)
	assert.Equal(t, 12, got.Competitors.DocumentsAnalyzed)
	require.NotNil(t, got.Learned)
	assert.Equal(t, []component.Type{component.IconList}, got.Learned.Preferred)
	require.NotNil(t, got.Intent)
	assert.Equal(t, "decision", got.Intent.JourneyStage)
}

func TestAssemble_FailingSourcesDegradeIndependently(t *testing.T) {
	a := New(
		WithCompetitorSource(fakeCompetitors{err: errors.New("scrape backlog")}),
		WithPreferenceSource(fakePreferences{learned: &LearnedPreferences{}}),
		WithBriefSource(fakeBriefs{err: errors.New("brief service down")}),
	)
	got := a.Assemble(context.Background(), "acct", "doc", someSections(), Brand{Industry: "saas"})

	assert.Nil(t, got.Competitors, "failed lookup degrades to nil")
	assert.NotNil(t, got.Learned, "healthy lookup is unaffected by failing siblings")
	assert.Nil(t, got.Intent)
	assert.Len(t, got.Sections, 2, "core context never degrades")
}

func TestAssemble_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(WithCompetitorSource(fakeCompetitors{err: ctx.Err()}))
	got := a.Assemble(ctx, "acct", "doc", someSections(), Brand{Industry: "saas"})
	assert.Nil(t, got.Competitors)
	assert.Equal(t, "saas", got.Norms.Industry)
}

func TestNormsForIndustry_ExactAndSubstring(t *testing.T) {
	assert.Equal(t, "finance", NormsForIndustry("finance").Industry)
	assert.Equal(t, "finance", NormsForIndustry(" Finance ").Industry)
	assert.Equal(t, "saas", NormsForIndustry("b2b saas tools").Industry)
}

func TestNormsForIndustry_UnknownGetsNeutralDefault(t *testing.T) {
	norms := NormsForIndustry("interpretive dance")
	assert.Equal(t, "general", norms.Industry)
	assert.NotEmpty(t, norms.PreferredStyles)
	assert.Equal(t, "medium", norms.ColorIntensity)

	assert.Equal(t, "general", NormsForIndustry("").Industry)
}

func TestUsageShare_NilSafe(t *testing.T) {
	var c *CompetitorPatterns
	assert.Equal(t, 0.0, c.UsageShare(component.CardGrid))

	c = &CompetitorPatterns{ComponentUsage: map[component.Type]float64{component.CardGrid: 0.7}}
	assert.Equal(t, 0.7, c.UsageShare(component.CardGrid))
	assert.Equal(t, 0.0, c.UsageShare(component.Prose))
}
