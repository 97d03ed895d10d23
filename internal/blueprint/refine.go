package blueprint

import (
	"errors"
	"fmt"

	"pageforge/internal/component"
	"pageforge/internal/selector"
)

// ErrSectionNotFound reports a refinement request against a section id
// that does not exist in the blueprint. Unlike missing optional context,
// this is the caller's mistake and is surfaced.
var ErrSectionNotFound = errors.New("section not found in blueprint")

// RefineSection returns a copy of the blueprint with one section's
// component replaced and the coherence pass re-applied. The original
// blueprint is left untouched.
func RefineSection(bp *Blueprint, sectionID string, to component.Type) (*Blueprint, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("unknown component %q", to)
	}

	idx := -1
	for i, d := range bp.Sections {
		if d.SectionID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("refine %q: %w", sectionID, ErrSectionNotFound)
	}

	out := *bp
	out.Sections = make([]SectionDesign, len(bp.Sections))
	copy(out.Sections, bp.Sections)

	prev := out.Sections[idx].Selection
	out.Sections[idx].Selection = selector.Selection{
		Component:     to,
		Score:         prev.Score,
		Confidence:    prev.Confidence,
		Justification: []string{fmt.Sprintf("manually refined from %s", prev.Component)},
		Visual:        prev.Visual,
	}

	applyCoherence(out.Sections, out.Strategy.VisualStyle)
	return &out, nil
}
