package assembler

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"pageforge/internal/component"
	"pageforge/internal/section"
)

// CompetitorSource provides layout patterns from analyzed competitor
// documents. Optional collaborator.
type CompetitorSource interface {
	CompetitorPatterns(ctx context.Context, industry string) (*CompetitorPatterns, error)
}

// PreferenceSource provides the account's learned style-correction
// history. Optional collaborator.
type PreferenceSource interface {
	LearnedPreferences(ctx context.Context, accountID string) (*LearnedPreferences, error)
}

// BriefSource provides buyer-intent signals from the content brief.
// Optional collaborator.
type BriefSource interface {
	BuyerIntent(ctx context.Context, documentID string) (*BuyerIntent, error)
}

// Assembler aggregates parsed sections with brand facts, industry norms,
// and whatever optional context its collaborators can supply.
type Assembler struct {
	competitors CompetitorSource
	preferences PreferenceSource
	briefs      BriefSource
	logger      *log.Logger
}

type Option func(*Assembler)

func WithCompetitorSource(s CompetitorSource) Option {
	return func(a *Assembler) { a.competitors = s }
}

func WithPreferenceSource(s PreferenceSource) Option {
	return func(a *Assembler) { a.preferences = s }
}

func WithBriefSource(s BriefSource) Option {
	return func(a *Assembler) { a.briefs = s }
}

func WithLogger(l *log.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

func New(opts ...Option) *Assembler {
	a := &Assembler{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the consolidated generation context. The three optional
// lookups run concurrently; each one that fails or is absent degrades to
// nil independently, so Assemble always returns a complete context and
// never an error. Cancelling ctx abandons in-flight lookups and proceeds
// with whatever already resolved.
func (a *Assembler) Assemble(ctx context.Context, accountID, documentID string, sections []section.Section, brand Brand) Context {
	out := Context{
		Sections: sections,
		Brand:    brand,
		Norms:    NormsForIndustry(brand.Industry),
	}

	g, gctx := errgroup.WithContext(ctx)

	if a.competitors != nil {
		g.Go(func() error {
			patterns, err := a.competitors.CompetitorPatterns(gctx, brand.Industry)
			if err != nil {
				a.logger.Warn("competitor patterns unavailable", "industry", brand.Industry, "err", err)
				return nil
			}
			out.Competitors = patterns
			return nil
		})
	}
	if a.preferences != nil {
		g.Go(func() error {
			learned, err := a.preferences.LearnedPreferences(gctx, accountID)
			if err != nil {
				a.logger.Warn("learned preferences unavailable", "account", accountID, "err", err)
				return nil
			}
			out.Learned = learned
			return nil
		})
	}
	if a.briefs != nil {
		g.Go(func() error {
			intent, err := a.briefs.BuyerIntent(gctx, documentID)
			if err != nil {
				a.logger.Warn("buyer intent unavailable", "document", documentID, "err", err)
				return nil
			}
			out.Intent = intent
			return nil
		})
	}

	// Goroutines swallow their own errors, so Wait only reports ctx
	// cancellation, which is also non-fatal here.
	_ = g.Wait()
	return out
}

var industryNorms = map[string]IndustryNorms{
	"saas": {
		Industry:        "saas",
		PreferredStyles: []string{"marketing", "minimal"},
		ColorIntensity:  "medium",
		Formality:       "casual-professional",
		CommonPatterns:  []component.Type{component.FeatureGrid, component.PricingCards, component.LogoWall},
	},
	"finance": {
		Industry:        "finance",
		PreferredStyles: []string{"editorial", "minimal"},
		ColorIntensity:  "low",
		Formality:       "formal",
		CommonPatterns:  []component.Type{component.DataTable, component.StatRow, component.TrustBadges},
	},
	"healthcare": {
		Industry:        "healthcare",
		PreferredStyles: []string{"warm-modern", "editorial"},
		ColorIntensity:  "low",
		Formality:       "professional",
		CommonPatterns:  []component.Type{component.FAQAccordion, component.TrustBadges, component.SourcesList},
	},
	"ecommerce": {
		Industry:        "ecommerce",
		PreferredStyles: []string{"bold", "marketing"},
		ColorIntensity:  "high",
		Formality:       "casual",
		CommonPatterns:  []component.Type{component.CardGrid, component.ReviewStars, component.CTABanner},
	},
	"education": {
		Industry:        "education",
		PreferredStyles: []string{"warm-modern", "editorial"},
		ColorIntensity:  "medium",
		Formality:       "approachable",
		CommonPatterns:  []component.Type{component.NumberedSteps, component.DefinitionBox, component.FAQAccordion},
	},
	"legal": {
		Industry:        "legal",
		PreferredStyles: []string{"editorial", "minimal"},
		ColorIntensity:  "low",
		Formality:       "formal",
		CommonPatterns:  []component.Type{component.Prose, component.SourcesList, component.TableOfContents},
	},
	"real-estate": {
		Industry:        "real-estate",
		PreferredStyles: []string{"bold", "warm-modern"},
		ColorIntensity:  "high",
		Formality:       "professional",
		CommonPatterns:  []component.Type{component.ImageGallery, component.StatHighlight, component.LeadForm},
	},
}

// NormsForIndustry looks up the design norms for an industry keyword,
// matching loosely on substrings. Unknown industries get a neutral
// default rather than an error.
func NormsForIndustry(industry string) IndustryNorms {
	key := strings.ToLower(strings.TrimSpace(industry))
	if norms, ok := industryNorms[key]; ok {
		return norms
	}
	keys := make([]string, 0, len(industryNorms))
	for k := range industryNorms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if key != "" && strings.Contains(key, k) {
			return industryNorms[k]
		}
	}
	return IndustryNorms{
		Industry:        "general",
		PreferredStyles: []string{"editorial", "marketing"},
		ColorIntensity:  "medium",
		Formality:       "professional",
		CommonPatterns:  []component.Type{component.Prose, component.BulletList, component.CTABanner},
	}
}
