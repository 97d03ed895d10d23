package blueprint

import (
	"fmt"
	"strings"

	"pageforge/internal/assembler"
	"pageforge/internal/coherence"
	"pageforge/internal/section"
)

// ComputeStrategy derives the page-level decisions from the consolidated
// context. Pure: the same context always yields the same strategy.
func ComputeStrategy(ctx assembler.Context) PageStrategy {
	s := PageStrategy{
		VisualStyle:    pickStyle(ctx),
		ColorIntensity: ctx.Norms.ColorIntensity,
		Pacing:         pickPacing(ctx),
		PrimaryGoal:    "inform",
		JourneyStage:   "awareness",
	}
	if ctx.Intent != nil {
		if ctx.Intent.PrimaryGoal != "" {
			s.PrimaryGoal = ctx.Intent.PrimaryGoal
		}
		if ctx.Intent.JourneyStage != "" {
			s.JourneyStage = ctx.Intent.JourneyStage
		}
	}
	s.Reasoning = reasoning(ctx, s)
	return s
}

func pickStyle(ctx assembler.Context) string {
	tone := strings.ToLower(ctx.Brand.Tone)
	switch {
	case strings.Contains(tone, "playful"), strings.Contains(tone, "energetic"):
		return "bold"
	case strings.Contains(tone, "warm"), strings.Contains(tone, "friendly"):
		return "warm-modern"
	case strings.Contains(tone, "authoritative"), strings.Contains(tone, "expert"):
		return "editorial"
	case strings.Contains(tone, "direct"), strings.Contains(tone, "sales"):
		return "marketing"
	}
	// Fall back to the industry's first preferred style.
	if len(ctx.Norms.PreferredStyles) > 0 {
		if candidate := ctx.Norms.PreferredStyles[0]; validStyle(candidate) {
			return candidate
		}
	}
	return "editorial"
}

func validStyle(s string) bool {
	for _, v := range coherence.Styles() {
		if v == s {
			return true
		}
	}
	return false
}

func pickPacing(ctx assembler.Context) string {
	total := 0
	for _, s := range ctx.Sections {
		total += s.WordCount
	}
	n := len(ctx.Sections)
	if n == 0 {
		return "balanced"
	}
	avg := total / n
	switch {
	case avg > 280:
		return "spacious"
	case avg < 110:
		return "dense"
	default:
		return "balanced"
	}
}

func reasoning(ctx assembler.Context, s PageStrategy) string {
	parts := []string{
		fmt.Sprintf("%s style chosen for a %s brand in %s", s.VisualStyle, orDefault(ctx.Brand.Tone, "neutral"), ctx.Norms.Industry),
		fmt.Sprintf("%s pacing across %d sections", s.Pacing, len(ctx.Sections)),
	}
	if ctx.Competitors != nil {
		parts = append(parts, fmt.Sprintf("differentiating against %d analyzed competitor documents", ctx.Competitors.DocumentsAnalyzed))
	}
	if ctx.Learned != nil && (len(ctx.Learned.Preferred) > 0 || len(ctx.Learned.SwappedFrom) > 0) {
		parts = append(parts, "account correction history applied")
	}
	return strings.Join(parts, "; ") + "."
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// computeGlobalElements decides the document-wide furniture from the
// strategy and the section mix.
func computeGlobalElements(ctx assembler.Context, s PageStrategy) GlobalElements {
	g := GlobalElements{
		CTAPlacement: "end",
		CTAIntensity: "medium",
		CTAStyle:     "banner",
		ShowRelated:  true,
	}
	if len(ctx.Sections) >= 6 {
		g.ShowTOC = true
		g.TOCPosition = "top"
	}
	switch s.JourneyStage {
	case "decision", "purchase":
		g.CTAPlacement = "distributed"
		g.CTAIntensity = "high"
	case "awareness":
		g.CTAIntensity = "low"
	}
	if ctx.Intent != nil && ctx.Intent.CTAIntensity != "" {
		g.CTAIntensity = ctx.Intent.CTAIntensity
	}
	switch s.VisualStyle {
	case "editorial":
		g.ShowAuthorBox = true
		g.ShowSources = true
		g.CTAStyle = "inline"
	case "minimal":
		g.CTAStyle = "inline"
		g.ShowRelated = false
	case "bold", "marketing":
		g.CTAStyle = "banner"
	}
	for _, sec := range ctx.Sections {
		if sec.Type == section.TypeStatistics || sec.Type == section.TypeCaseStudy {
			g.ShowSources = true
		}
	}
	return g
}
