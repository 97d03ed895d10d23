package blueprint

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"pageforge/internal/assembler"
	"pageforge/internal/coherence"
	"pageforge/internal/component"
	"pageforge/internal/parser"
	"pageforge/internal/section"
	"pageforge/internal/selector"
)

// Request carries everything one generation needs. Avoid, Prefer, and
// Style typically come from the resolved hierarchy settings.
type Request struct {
	DocumentID string
	AccountID  string
	Analysis   section.Analysis
	Brand      assembler.Brand
	Style      string // empty means let the strategy decide
	Avoid      []component.Type
	Prefer     []component.Type
	Version    int
}

// Generator runs the full pipeline: parse, assemble, select per section,
// coherence pass, strategy and global elements.
type Generator struct {
	asm       *assembler.Assembler
	completer TextCompleter
	logger    *log.Logger
}

type GeneratorOption func(*Generator)

// WithCompleter enables the AI-assisted path. The generator still falls
// back to the heuristic path whenever the completer fails or returns
// output that cannot be parsed.
func WithCompleter(c TextCompleter) GeneratorOption {
	return func(g *Generator) { g.completer = c }
}

func WithGeneratorLogger(l *log.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = l }
}

func NewGenerator(asm *assembler.Assembler, opts ...GeneratorOption) *Generator {
	g := &Generator{asm: asm, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a fresh blueprint version for the document. It never
// returns an error for well-formed input: every stage has a deterministic
// default path.
func (g *Generator) Generate(ctx context.Context, req Request) *Blueprint {
	start := time.Now()

	sections := parser.Parse(req.Analysis)
	genCtx := g.asm.Assemble(ctx, req.AccountID, req.DocumentID, sections, req.Brand)

	strategy := ComputeStrategy(genCtx)
	if req.Style != "" && validStyle(req.Style) {
		strategy.VisualStyle = req.Style
		strategy.Reasoning = "visual style pinned by settings; " + strategy.Reasoning
	}

	mode := "heuristic"
	var designs []SectionDesign
	if g.completer != nil {
		if aiDesigns, ok := g.tryAIDesigns(ctx, genCtx, strategy, req); ok {
			designs = aiDesigns
			mode = "ai"
		}
	}
	if designs == nil {
		designs = g.heuristicDesigns(genCtx, strategy, req)
	}

	applyCoherence(designs, strategy.VisualStyle)

	version := req.Version
	if version <= 0 {
		version = 1
	}
	bp := &Blueprint{
		Schema:     SchemaVersion,
		ID:         uuid.NewString(),
		DocumentID: req.DocumentID,
		Version:    version,
		Strategy:   strategy,
		Sections:   designs,
		Global:     computeGlobalElements(genCtx, strategy),
		Meta: Metadata{
			GeneratedAt:  time.Now().UTC(),
			Mode:         mode,
			Duration:     time.Since(start),
			SectionCount: len(sections),
			WordCount:    totalWords(sections),
			InputsHash:   InputsHash(req),
		},
	}
	return bp
}

// heuristicDesigns runs the deterministic selector over every section,
// threading the recent-components window in document order.
func (g *Generator) heuristicDesigns(genCtx assembler.Context, strategy PageStrategy, req Request) []SectionDesign {
	designs := make([]SectionDesign, 0, len(genCtx.Sections))
	var recent []component.Type

	for i, sec := range genCtx.Sections {
		sel := selector.Select(selector.Input{
			Section: sec,
			Ctx:     genCtx,
			Style:   strategy.VisualStyle,
			Index:   i,
			Total:   len(genCtx.Sections),
			Recent:  recent,
			Avoid:   req.Avoid,
			Prefer:  req.Prefer,
		})
		designs = append(designs, SectionDesign{
			SectionID:  sec.ID,
			Heading:    sec.Heading,
			Type:       sec.Type,
			Importance: sec.Importance,
			Selection:  sel,
		})
		recent = append(recent, sel.Component)
		if len(recent) > 3 {
			recent = recent[1:]
		}
	}
	return designs
}

// applyCoherence runs the whole-document pass and writes the rewritten
// spacing, background, emphasis, and divider values back into the
// section designs.
func applyCoherence(designs []SectionDesign, style string) {
	units := make([]coherence.Unit, len(designs))
	for i, d := range designs {
		units[i] = coherence.Unit{
			Component:  d.Selection.Component,
			Importance: d.Importance,
		}
	}
	applied := coherence.Apply(units, style)
	for i := range designs {
		v := &designs[i].Selection.Visual
		v.Spacing = applied[i].Spacing
		v.Background = applied[i].Background
		v.Emphasis = applied[i].Emphasis
		v.Divider = applied[i].Divider
	}
}

// Units converts a blueprint's sections into the coherence view, for
// non-destructive analysis of a stored blueprint.
func (b *Blueprint) Units() []coherence.Unit {
	units := make([]coherence.Unit, len(b.Sections))
	for i, d := range b.Sections {
		units[i] = coherence.Unit{
			Component:  d.Selection.Component,
			Importance: d.Importance,
			Spacing:    d.Selection.Visual.Spacing,
			Background: d.Selection.Visual.Background,
			Emphasis:   d.Selection.Visual.Emphasis,
			Divider:    d.Selection.Visual.Divider,
		}
	}
	return units
}

func totalWords(sections []section.Section) int {
	total := 0
	for _, s := range sections {
		total += s.WordCount
	}
	return total
}
