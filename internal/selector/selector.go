package selector

import (
	"fmt"
	"sort"

	"pageforge/internal/assembler"
	"pageforge/internal/component"
	"pageforge/internal/section"
)

// VisualConfig holds the presentation knobs attached to a selection. The
// coherence pass rewrites spacing, background, and emphasis afterwards.
type VisualConfig struct {
	Emphasis   string `json:"emphasis"`
	Spacing    string `json:"spacing"`
	Background bool   `json:"background"`
	Divider    bool   `json:"divider"`
	Columns    int    `json:"columns,omitempty"`
	Variant    string `json:"variant,omitempty"`
	IconStyle  string `json:"icon_style,omitempty"`
}

// Alternative is one ranked runner-up with a one-line tradeoff.
type Alternative struct {
	Component component.Type `json:"component"`
	Score     float64        `json:"score"`
	Tradeoff  string         `json:"tradeoff"`
}

// Selection is the chosen component for one section. Selections are
// produced fresh on every generation and replaced, never mutated.
type Selection struct {
	Component     component.Type `json:"component"`
	Score         float64        `json:"score"`
	Confidence    float64        `json:"confidence"`
	Justification []string       `json:"justification"`
	Alternatives  []Alternative  `json:"alternatives,omitempty"`
	Visual        VisualConfig   `json:"visual"`
}

// Input is everything one selection depends on. Recent is the window of
// previously chosen components in document order; the caller threads it
// section by section.
type Input struct {
	Section section.Section
	Ctx     assembler.Context
	Style   string
	Index   int
	Total   int
	Recent  []component.Type
	Avoid   []component.Type
	Prefer  []component.Type
}

type scored struct {
	cand  component.Type
	score float64
	why   []string
}

// Select scores every candidate for the section's semantic type and
// returns the winner plus up to three alternatives. Deterministic: same
// input, same output.
func Select(in Input) Selection {
	cands := CandidatesFor(in.Section.Type)

	results := make([]scored, 0, len(cands))
	for rank, cand := range cands {
		s := scored{cand: cand, score: baseScore(rank)}
		if rank == 0 && in.Section.Confidence >= 0.8 {
			s.score += 10
			s.why = append(s.why, "top candidate for a confidently classified section")
		}
		for _, rule := range rulePasses {
			delta, why := rule(cand, in)
			s.score += delta
			s.why = append(s.why, why...)
		}
		if s.score < 0 {
			s.score = 0
		}
		results = append(results, s)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].cand < results[j].cand
		}
		return results[i].score > results[j].score
	})

	winner := results[0]
	sel := Selection{
		Component:     winner.cand,
		Score:         winner.score,
		Confidence:    confidence(winner.score),
		Justification: winner.why,
		Visual:        defaultVisual(winner.cand, in.Section),
	}
	if len(sel.Justification) == 0 {
		sel.Justification = []string{fmt.Sprintf("default choice for %s sections", in.Section.Type)}
	}

	for _, alt := range results[1:] {
		if len(sel.Alternatives) == 3 {
			break
		}
		sel.Alternatives = append(sel.Alternatives, Alternative{
			Component: alt.cand,
			Score:     alt.score,
			Tradeoff:  tradeoffLine(winner, alt),
		})
	}
	return sel
}

func confidence(score float64) float64 {
	c := score / 100
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}

// tradeoffLine explains in one line what picking the alternative would
// have cost or changed: score delta, weight contrast, or its strongest
// justification the winner does not share.
func tradeoffLine(winner, alt scored) string {
	ww := component.WeightOf(winner.cand)
	aw := component.WeightOf(alt.cand)
	if ww != aw {
		return fmt.Sprintf("%s presence than %s (%.0f pts behind)", weightContrast(aw, ww), winner.cand, winner.score-alt.score)
	}
	winnerWhy := map[string]bool{}
	for _, w := range winner.why {
		winnerWhy[w] = true
	}
	for _, w := range alt.why {
		if !winnerWhy[w] {
			return w
		}
	}
	return fmt.Sprintf("scores %.0f pts behind %s", winner.score-alt.score, winner.cand)
}

func weightContrast(alt, winner component.Weight) string {
	order := map[component.Weight]int{
		component.WeightLight: 0, component.WeightMedium: 1, component.WeightHeavy: 2,
	}
	if order[alt] > order[winner] {
		return "stronger visual"
	}
	return "quieter visual"
}

// defaultVisual seeds the visual config from the component and the
// section's content shape. Coherence owns the final spacing, background,
// emphasis, and divider values.
func defaultVisual(t component.Type, s section.Section) VisualConfig {
	v := VisualConfig{Emphasis: "normal", Spacing: "normal"}
	switch component.CategoryOf(t) {
	case component.CatLists:
		v.Columns = gridColumns(maxListLen(s))
		v.IconStyle = "outline"
	case component.CatConversion:
		v.Variant = "standard"
	case component.CatSpecialized:
		if t == component.FAQAccordion || t == component.FAQCards {
			v.Variant = "collapsed"
		}
	}
	return v
}

func gridColumns(items int) int {
	switch {
	case items >= 6:
		return 3
	case items >= 3:
		return 2
	default:
		return 1
	}
}
