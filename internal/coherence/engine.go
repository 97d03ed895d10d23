package coherence

import (
	"pageforge/internal/component"
	"pageforge/internal/section"
)

// Emphasis levels, from quietest to loudest.
const (
	EmphasisNormal   = "normal"
	EmphasisFeatured = "featured"
	EmphasisHero     = "hero-moment"
)

// Unit is the coherence view of one designed section: the chosen
// component plus the fields the engine owns.
type Unit struct {
	Component  component.Type     `json:"component"`
	Importance section.Importance `json:"importance"`
	Spacing    string             `json:"spacing"`
	Background bool               `json:"background"`
	Emphasis   string             `json:"emphasis"`
	Divider    bool               `json:"divider"`
}

// Apply rewrites spacing, background, emphasis, and divider of every unit
// to satisfy the style preset. Every field is recomputed from component,
// importance, and position alone, which makes Apply idempotent.
func Apply(units []Unit, style string) []Unit {
	p := PresetFor(style)
	out := make([]Unit, len(units))
	copy(out, units)

	applySpacing(out, p)
	applyEmphasis(out, p)
	applyBackground(out, p)
	applyDividers(out, p)
	return out
}

func applySpacing(units []Unit, p Preset) {
	cycle := p.SpacingCycle
	if len(cycle) == 0 {
		cycle = []string{"normal"}
	}
	for i := range units {
		switch {
		case i == 0:
			// Openers never start compact.
			units[i].Spacing = "normal"
			if cycle[0] == "spacious" {
				units[i].Spacing = "spacious"
			}
		case p.BreatheBefore[units[i].Component]:
			units[i].Spacing = "spacious"
		default:
			units[i].Spacing = cycle[i%len(cycle)]
		}
	}
}

// applyEmphasis distributes the emphasis budget. At most MaxFeatured
// units end up featured and at most one becomes the hero moment.
func applyEmphasis(units []Unit, p Preset) {
	for i := range units {
		units[i].Emphasis = EmphasisNormal
	}

	candidates := emphasisOrder(units, p.EmphasisPlacement)
	featured := 0
	heroPlaced := false
	for _, i := range candidates {
		if featured >= p.MaxFeatured {
			break
		}
		if !heroPlaced &&
			units[i].Importance == section.ImpKeyTakeaway &&
			component.WeightOf(units[i].Component) == component.WeightHeavy {
			units[i].Emphasis = EmphasisHero
			heroPlaced = true
			featured++
			continue
		}
		units[i].Emphasis = EmphasisFeatured
		featured++
	}
}

// emphasisOrder ranks unit indexes by how much they deserve emphasis:
// importance class first, then distance from the preset's preferred
// position. Deterministic for a given unit list.
func emphasisOrder(units []Unit, placement string) []int {
	n := len(units)
	type ranked struct {
		idx      int
		impScore int
		posScore int
	}
	var eligible []ranked
	for i, u := range units {
		imp := 0
		switch u.Importance {
		case section.ImpKeyTakeaway:
			imp = 2
		case section.ImpCore:
			imp = 1
		default:
			continue
		}
		eligible = append(eligible, ranked{idx: i, impScore: imp, posScore: placementScore(i, n, placement)})
	}
	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			a, b := eligible[i], eligible[j]
			better := b.impScore > a.impScore ||
				(b.impScore == a.impScore && b.posScore > a.posScore) ||
				(b.impScore == a.impScore && b.posScore == a.posScore && b.idx < a.idx)
			if better {
				eligible[i], eligible[j] = eligible[j], eligible[i]
			}
		}
	}
	out := make([]int, len(eligible))
	for i, e := range eligible {
		out[i] = e.idx
	}
	return out
}

func placementScore(idx, total int, placement string) int {
	if total <= 1 {
		return 0
	}
	switch placement {
	case "start":
		return total - idx
	case "end":
		return idx + 1
	case "middle":
		mid := total / 2
		d := idx - mid
		if d < 0 {
			d = -d
		}
		return total - d
	default: // distributed: favor odd positions so emphasis spreads out
		if idx%2 == 1 {
			return 2
		}
		return 1
	}
}

func applyBackground(units []Unit, p Preset) {
	for i := range units {
		u := &units[i]
		switch {
		case p.AlwaysBackground[u.Component]:
			u.Background = true
		case p.NeverBackground[u.Component]:
			u.Background = false
		default:
			switch p.BackgroundStrategy {
			case "alternating":
				u.Background = i%2 == 1
			case "every-third":
				u.Background = i%3 == 2
			default: // feature-only
				u.Background = u.Emphasis != EmphasisNormal
			}
		}
	}
	capBackgroundRuns(units, p)
}

// capBackgroundRuns clears the background on units that would exceed the
// preset's max consecutive cap, keeping always-background components.
func capBackgroundRuns(units []Unit, p Preset) {
	if p.MaxConsecutiveBG <= 0 {
		return
	}
	run := 0
	for i := range units {
		if !units[i].Background {
			run = 0
			continue
		}
		run++
		if run > p.MaxConsecutiveBG && !p.AlwaysBackground[units[i].Component] {
			units[i].Background = false
			run = 0
		}
	}
}

func applyDividers(units []Unit, p Preset) {
	for i := range units {
		units[i].Divider = false
	}
	switch p.DividerStrategy {
	case "before-components":
		for i := range units {
			if i > 0 && p.DividerBefore[units[i].Component] {
				units[i].Divider = true
			}
		}
	case "between-groups":
		for i := 1; i < len(units); i++ {
			if component.CategoryOf(units[i].Component) != component.CategoryOf(units[i-1].Component) {
				units[i].Divider = true
			}
		}
	}
}
