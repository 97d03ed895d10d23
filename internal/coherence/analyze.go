package coherence

import (
	"fmt"

	"pageforge/internal/component"
)

// Issue categories and severities used in analysis reports.
const (
	CategorySpacing    = "spacing"
	CategoryBackground = "background"
	CategoryEmphasis   = "emphasis"
	CategoryWeight     = "weight"

	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is one detected coherence violation.
type Issue struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Index    int    `json:"index"`
	Message  string `json:"message"`
}

// Suggestion proposes a concrete field change to repair an issue.
type Suggestion struct {
	Index     int    `json:"index"`
	Field     string `json:"field"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

// Report is the non-destructive analysis of an existing sequence.
type Report struct {
	Score       int          `json:"score"`
	Issues      []Issue      `json:"issues"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Analyze scores an existing sequence against the style preset without
// mutating it. Score starts at 100 and loses 15 per error and 5 per
// warning, floored at 0.
func Analyze(units []Unit, style string) Report {
	p := PresetFor(style)
	r := Report{}

	r.checkBackground(units, p)
	r.checkEmphasis(units, p)
	r.checkWeightFlow(units)
	r.suggestFromIdeal(units, style)

	r.Score = 100
	for _, iss := range r.Issues {
		if iss.Severity == SeverityError {
			r.Score -= 15
		} else {
			r.Score -= 5
		}
	}
	if r.Score < 0 {
		r.Score = 0
	}
	return r
}

func (r *Report) checkBackground(units []Unit, p Preset) {
	run := 0
	for i, u := range units {
		if u.Background && p.NeverBackground[u.Component] {
			r.Issues = append(r.Issues, Issue{
				Category: CategoryBackground, Severity: SeverityError, Index: i,
				Message: fmt.Sprintf("%s must not sit on a background surface", u.Component),
			})
		}
		if u.Background {
			run++
			if run == p.MaxConsecutiveBG+1 {
				r.Issues = append(r.Issues, Issue{
					Category: CategoryBackground, Severity: SeverityError, Index: i,
					Message: fmt.Sprintf("more than %d consecutive background sections", p.MaxConsecutiveBG),
				})
			}
		} else {
			run = 0
		}
	}
}

func (r *Report) checkEmphasis(units []Unit, p Preset) {
	featured := 0
	heroes := 0
	for i, u := range units {
		switch u.Emphasis {
		case EmphasisFeatured:
			featured++
			if featured == p.MaxFeatured+1 {
				r.Issues = append(r.Issues, Issue{
					Category: CategoryEmphasis, Severity: SeverityError, Index: i,
					Message: fmt.Sprintf("emphasis budget exceeded: more than %d featured sections", p.MaxFeatured),
				})
			}
		case EmphasisHero:
			heroes++
			if heroes == 2 {
				r.Issues = append(r.Issues, Issue{
					Category: CategoryEmphasis, Severity: SeverityError, Index: i,
					Message: "a document carries at most one hero moment",
				})
			}
		}
	}
	if featured == 0 && heroes == 0 && len(units) >= 5 {
		r.Issues = append(r.Issues, Issue{
			Category: CategoryEmphasis, Severity: SeverityWarning, Index: 0,
			Message: "long document with no emphasized section reads flat",
		})
	}
}

func (r *Report) checkWeightFlow(units []Unit) {
	lightRun := 0
	for i, u := range units {
		w := component.WeightOf(u.Component)
		if i > 0 && w == component.WeightHeavy &&
			component.WeightOf(units[i-1].Component) == component.WeightHeavy {
			r.Issues = append(r.Issues, Issue{
				Category: CategoryWeight, Severity: SeverityWarning, Index: i,
				Message: "two heavy components in a row",
			})
		}
		if w == component.WeightLight {
			lightRun++
			if lightRun == 4 {
				r.Issues = append(r.Issues, Issue{
					Category: CategoryWeight, Severity: SeverityWarning, Index: i,
					Message: "four light components in a row lose the reader's attention",
				})
			}
		} else {
			lightRun = 0
		}
	}
}

// suggestFromIdeal diffs the sequence against what Apply would produce
// and emits one suggestion per differing field.
func (r *Report) suggestFromIdeal(units []Unit, style string) {
	ideal := Apply(units, style)
	for i := range units {
		if units[i].Spacing != ideal[i].Spacing {
			r.Suggestions = append(r.Suggestions, Suggestion{
				Index: i, Field: "spacing",
				Current: units[i].Spacing, Suggested: ideal[i].Spacing,
				Reason: "matches the style's spacing rhythm",
			})
			if units[i].Spacing != "" {
				r.Issues = append(r.Issues, Issue{
					Category: CategorySpacing, Severity: SeverityWarning, Index: i,
					Message: "spacing breaks the style's rhythm cycle",
				})
			}
		}
		if units[i].Background != ideal[i].Background {
			r.Suggestions = append(r.Suggestions, Suggestion{
				Index: i, Field: "background",
				Current: fmt.Sprintf("%t", units[i].Background),
				Suggested: fmt.Sprintf("%t", ideal[i].Background),
				Reason: "follows the style's background strategy",
			})
		}
		if units[i].Emphasis != ideal[i].Emphasis {
			r.Suggestions = append(r.Suggestions, Suggestion{
				Index: i, Field: "emphasis",
				Current: units[i].Emphasis, Suggested: ideal[i].Emphasis,
				Reason: "redistributes the emphasis budget",
			})
		}
	}
}
