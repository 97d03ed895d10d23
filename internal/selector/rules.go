package selector

import (
	"fmt"

	"pageforge/internal/component"
	"pageforge/internal/section"
)

// scoreRule is one pure scoring pass. Each returns a score delta and a
// justification line for every non-zero adjustment. Rules run in a fixed
// order via a fold and never see each other's deltas.
type scoreRule func(cand component.Type, in Input) (float64, []string)

// rulePasses runs in this exact order: rhythm, style, position,
// preference, competitor/content.
var rulePasses = []scoreRule{
	rhythmRule,
	styleRule,
	positionRule,
	preferenceRule,
	competitorContentRule,
}

// rhythmRule keeps the document from repeating itself: identical
// neighbors, back-to-back heavy components, and long light runs all pay.
func rhythmRule(cand component.Type, in Input) (float64, []string) {
	delta := 0.0
	var why []string

	n := len(in.Recent)
	if n > 0 && in.Recent[n-1] == cand {
		delta -= 30
		why = append(why, "identical to the previous section's component")
	} else if n > 1 && in.Recent[n-2] == cand {
		delta -= 15
		why = append(why, "used two sections ago")
	}

	w := component.WeightOf(cand)
	if n > 0 && w == component.WeightHeavy && component.WeightOf(in.Recent[n-1]) == component.WeightHeavy {
		delta -= 20
		why = append(why, "second heavy component in a row")
	}
	if n > 1 && w == component.WeightLight &&
		component.WeightOf(in.Recent[n-1]) == component.WeightLight &&
		component.WeightOf(in.Recent[n-2]) == component.WeightLight {
		delta -= 12
		why = append(why, "third light component in a row")
	}
	return delta, why
}

// Per-style preferred and discouraged components. Hand-authored; see the
// weight table note in internal/component.
var stylePreferred = map[string][]component.Type{
	"editorial": {
		component.Prose, component.PullQuote, component.Blockquote,
		component.DefinitionBox, component.SourcesList, component.TableOfContents,
	},
	"marketing": {
		component.CardGrid, component.IconList, component.FeatureGrid,
		component.CTABanner, component.StatHighlight,
		component.TestimonialCarousel, component.PricingCards,
	},
	"minimal": {
		component.Prose, component.BulletList, component.NumberedList,
		component.Callout, component.DefinitionBox,
	},
	"bold": {
		component.StatHighlight, component.CTABanner, component.BeforeAfter,
		component.ImageGallery, component.FeatureGrid, component.PullQuote,
	},
	"warm-modern": {
		component.IconList, component.TestimonialCard, component.HighlightBox,
		component.StepCards, component.FAQAccordion,
	},
}

var styleDiscouraged = map[string][]component.Type{
	"editorial": {
		component.CTABanner, component.PricingCards, component.LogoWall,
		component.TrustBadges, component.LeadForm,
	},
	"marketing": {
		component.BulletList, component.Prose, component.Blockquote,
	},
	"minimal": {
		component.ImageGallery, component.TestimonialCarousel,
		component.Infographic, component.CTABanner, component.LogoWall,
	},
	"bold": {
		component.Prose, component.BulletList, component.SourcesList,
	},
	"warm-modern": {
		component.DataTable, component.ComparisonTable, component.StatRow,
	},
}

func styleRule(cand component.Type, in Input) (float64, []string) {
	for _, t := range stylePreferred[in.Style] {
		if t == cand {
			return 12, []string{fmt.Sprintf("preferred by the %s style", in.Style)}
		}
	}
	for _, t := range styleDiscouraged[in.Style] {
		if t == cand {
			return -12, []string{fmt.Sprintf("discouraged by the %s style", in.Style)}
		}
	}
	return 0, nil
}

// lastSectionFavored lists the closer-friendly components: summary boxes
// and conversion surfaces.
var lastSectionFavored = map[component.Type]bool{
	component.CTABanner: true, component.CTAInline: true,
	component.HighlightBox: true, component.Callout: true,
	component.LeadForm: true, component.NewsletterSignup: true,
}

func positionRule(cand component.Type, in Input) (float64, []string) {
	delta := 0.0
	var why []string
	w := component.WeightOf(cand)

	if in.Index == 0 {
		if w == component.WeightLight {
			delta += 10
			why = append(why, "light component suits an opening section")
		} else if w == component.WeightHeavy {
			delta -= 8
			why = append(why, "heavy component crowds the opening")
		}
		if cand == component.LeadParagraph {
			delta += 8
			why = append(why, "lead paragraph invites the reader in")
		}
	}
	if in.Index == in.Total-1 && lastSectionFavored[cand] {
		delta += 12
		why = append(why, "closer-friendly component for the final section")
	}
	if in.Index == in.Total-2 && in.Section.Type == section.TypeFAQ &&
		component.CategoryOf(cand) == component.CatSpecialized {
		delta += 8
		why = append(why, "FAQ block sits well just before the close")
	}
	if in.Section.Importance == section.ImpCore && w == component.WeightHeavy {
		delta += 6
		why = append(why, "core section can carry extra visual weight")
	}
	return delta, why
}

func preferenceRule(cand component.Type, in Input) (float64, []string) {
	delta := 0.0
	var why []string

	for _, t := range in.Avoid {
		if t == cand {
			delta -= 40
			why = append(why, "on the caller's avoid list")
		}
	}
	for _, t := range in.Prefer {
		if t == cand {
			delta += 15
			why = append(why, "on the caller's prefer list")
		}
	}

	learned := in.Ctx.Learned
	if learned == nil {
		return delta, why
	}
	if n := learned.SwappedFrom[cand]; n > 0 {
		p := float64(n) * 4
		if p > 20 {
			p = 20
		}
		delta -= p
		why = append(why, fmt.Sprintf("swapped away from %d times before", n))
	}
	if n := learned.SwappedTo[cand]; n > 0 {
		b := float64(n) * 3
		if b > 15 {
			b = 15
		}
		delta += b
		why = append(why, fmt.Sprintf("swapped toward %d times before", n))
	}
	for _, t := range learned.Preferred {
		if t == cand {
			delta += 10
			why = append(why, "matches learned account preference")
		}
	}
	for _, t := range learned.Avoided {
		if t == cand {
			delta -= 20
			why = append(why, "account has repeatedly rejected this component")
		}
	}
	return delta, why
}

// competitorContentRule differentiates from what competitors already do
// and rewards components matching the section's content shape.
func competitorContentRule(cand component.Type, in Input) (float64, []string) {
	delta := 0.0
	var why []string

	if comp := in.Ctx.Competitors; comp != nil {
		share := comp.UsageShare(cand)
		if share >= 0.6 {
			delta -= 8
			why = append(why, "most competitor documents already use this")
		} else if share < 0.2 && isStylePreferred(in.Style, cand) {
			delta += 6
			why = append(why, "on-style and rare among competitors")
		}
	}

	items := maxListLen(in.Section)
	if component.CategoryOf(cand) == component.CatLists && items >= 3 {
		delta += 10
		why = append(why, fmt.Sprintf("section carries %d list items", items))
		if items >= 6 {
			delta += 5
			why = append(why, "long list benefits from a structured layout")
		}
	}
	if len(in.Section.Content.Quotes) > 0 && quoteOriented[cand] {
		delta += 8
		why = append(why, "section contains block quotes")
	}
	if hasOrderedList(in.Section) &&
		(component.CategoryOf(cand) == component.CatProcess || cand == component.NumberedList) {
		delta += 8
		why = append(why, "ordered list maps onto step components")
	}
	return delta, why
}

var quoteOriented = map[component.Type]bool{
	component.Blockquote: true, component.PullQuote: true,
	component.TestimonialCard: true, component.TestimonialCarousel: true,
}

func isStylePreferred(style string, cand component.Type) bool {
	for _, t := range stylePreferred[style] {
		if t == cand {
			return true
		}
	}
	return false
}

func maxListLen(s section.Section) int {
	max := 0
	for _, l := range s.Content.Lists {
		if len(l.Items) > max {
			max = len(l.Items)
		}
	}
	return max
}

func hasOrderedList(s section.Section) bool {
	for _, l := range s.Content.Lists {
		if l.Ordered {
			return true
		}
	}
	return false
}
