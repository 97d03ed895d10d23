package hierarchy

import (
	"time"

	"pageforge/internal/component"
)

// Scope is the granularity at which layout defaults can be overridden.
type Scope string

const (
	ScopeProject  Scope = "project"
	ScopeCluster  Scope = "cluster"
	ScopeDocument Scope = "document"
)

// Settings is one scope's override fields. A nil field means "inherit
// from the next scope up"; empty slices mean the same for the lists.
type Settings struct {
	VisualStyle    *string          `json:"visual_style,omitempty"`
	Pacing         *string          `json:"pacing,omitempty"`
	ColorIntensity *string          `json:"color_intensity,omitempty"`
	CTAPlacement   *string          `json:"cta_placement,omitempty"`
	CTAIntensity   *string          `json:"cta_intensity,omitempty"`
	Prefer         []component.Type `json:"prefer,omitempty"`
	Avoid          []component.Type `json:"avoid,omitempty"`
}

// Record is one persisted scope record. Each scope level is stored and
// versioned independently.
type Record struct {
	ID        string    `json:"id"`
	Scope     Scope     `json:"scope"`
	OwnerID   string    `json:"owner_id"`
	Settings  Settings  `json:"settings"`
	Reasoning string    `json:"reasoning"`
	CreatedAt time.Time `json:"created_at"`
}

// Resolved is the effective configuration after the hierarchy fold:
// every field concrete, each annotated with the scope that supplied it.
type Resolved struct {
	VisualStyle    string           `json:"visual_style"`
	Pacing         string           `json:"pacing"`
	ColorIntensity string           `json:"color_intensity"`
	CTAPlacement   string           `json:"cta_placement"`
	CTAIntensity   string           `json:"cta_intensity"`
	Prefer         []component.Type `json:"prefer,omitempty"`
	Avoid          []component.Type `json:"avoid,omitempty"`
	Sources        map[string]Scope `json:"sources"`
}

// engineDefaults is the bottom of the hierarchy: values used when no
// scope record sets a field.
func engineDefaults() Settings {
	style := "editorial"
	pacing := "balanced"
	intensity := "medium"
	placement := "end"
	cta := "medium"
	return Settings{
		VisualStyle:    &style,
		Pacing:         &pacing,
		ColorIntensity: &intensity,
		CTAPlacement:   &placement,
		CTAIntensity:   &cta,
	}
}

// Merge folds [Document, Cluster, Project, Default] left to right,
// taking the first defined value per field. One fold instead of three
// special-cased merges: unset always means inherit.
func Merge(document, cluster, project *Settings) Resolved {
	layers := []struct {
		scope    Scope
		settings *Settings
	}{
		{ScopeDocument, document},
		{ScopeCluster, cluster},
		{ScopeProject, project},
	}
	defaults := engineDefaults()
	layers = append(layers, struct {
		scope    Scope
		settings *Settings
	}{"default", &defaults})

	out := Resolved{Sources: map[string]Scope{}}
	for _, layer := range layers {
		s := layer.settings
		if s == nil {
			continue
		}
		pickString(&out.VisualStyle, s.VisualStyle, "visual_style", layer.scope, out.Sources)
		pickString(&out.Pacing, s.Pacing, "pacing", layer.scope, out.Sources)
		pickString(&out.ColorIntensity, s.ColorIntensity, "color_intensity", layer.scope, out.Sources)
		pickString(&out.CTAPlacement, s.CTAPlacement, "cta_placement", layer.scope, out.Sources)
		pickString(&out.CTAIntensity, s.CTAIntensity, "cta_intensity", layer.scope, out.Sources)
		if out.Prefer == nil && len(s.Prefer) > 0 {
			out.Prefer = append([]component.Type(nil), s.Prefer...)
			out.Sources["prefer"] = layer.scope
		}
		if out.Avoid == nil && len(s.Avoid) > 0 {
			out.Avoid = append([]component.Type(nil), s.Avoid...)
			out.Sources["avoid"] = layer.scope
		}
	}
	return out
}

func pickString(dst *string, src *string, field string, scope Scope, sources map[string]Scope) {
	if *dst != "" || src == nil || *src == "" {
		return
	}
	*dst = *src
	sources[field] = scope
}
