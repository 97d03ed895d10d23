package parser

import (
	"fmt"
	"sort"
	"strings"

	"pageforge/internal/section"
)

// Per-signal priority weights. Heading evidence outranks structural
// evidence, which outranks body keywords, which outranks position priors.
const (
	headingWeight   = 0.40
	structureWeight = 0.30
	keywordWeight   = 0.20
	positionWeight  = 0.10
)

// Parse classifies every raw section from the structural analysis and
// returns the immutable section list in document order. It is a pure
// function: same analysis in, same sections out.
func Parse(a section.Analysis) []section.Section {
	out := make([]section.Section, 0, len(a.Sections))
	var prev *section.Section

	for i, raw := range a.Sections {
		st, conf := classify(raw, i, len(a.Sections))
		s := section.Section{
			ID:           raw.ID,
			Heading:      raw.Heading,
			HeadingLevel: raw.HeadingLevel,
			Raw:          raw.Body,
			Type:         st,
			Confidence:   conf,
			Content:      parseContent(raw),
			Position:     positionClass(i, len(a.Sections)),
			WordCount:    raw.WordCount,
		}
		if s.ID == "" {
			s.ID = fmt.Sprintf("section-%d", i+1)
		}
		if s.WordCount == 0 {
			s.WordCount = len(strings.Fields(raw.Body))
		}
		s.Relationship = relationship(prev, &s)
		s.Importance = importance(s)
		out = append(out, s)
		prev = &out[len(out)-1]
	}
	return out
}

// classify runs the four independent classifiers and combines their votes
// with the fixed priority weights. Ties resolve to background.
func classify(raw section.RawSection, index, total int) (section.SectionType, float64) {
	votes := map[section.SectionType]float64{}

	for t, w := range headingVotes(raw.Heading) {
		votes[t] += w * headingWeight
	}
	for t, w := range structureVotes(raw) {
		votes[t] += w * structureWeight
	}
	for t, w := range keywordVotes(raw.Body) {
		votes[t] += w * keywordWeight
	}
	for t, w := range positionVotes(index, total) {
		votes[t] += w * positionWeight
	}

	best := section.TypeBackground
	bestScore := 0.0
	// Iterate in a stable order so equal scores always resolve the same way.
	for _, t := range section.AllTypes() {
		if votes[t] > bestScore {
			best = t
			bestScore = votes[t]
		}
	}

	maxPossible := headingWeight + structureWeight + keywordWeight + positionWeight
	conf := bestScore / maxPossible
	if conf > 1 {
		conf = 1
	}
	return best, conf
}

var headingKeywords = map[section.SectionType][]string{
	section.TypeDefinition:  {"what is", "what are", "definition", "meaning of", "explained"},
	section.TypeBenefits:    {"benefit", "advantage", "why use", "why choose", "reasons to"},
	section.TypeFeatures:    {"feature", "capabilities", "what you get", "included"},
	section.TypeProcess:     {"how it works", "process", "workflow", "step by step"},
	section.TypeHowTo:       {"how to", "guide to", "getting started", "setup", "tutorial"},
	section.TypeComparison:  {" vs ", "versus", "compared", "comparison", "alternatives", "difference between"},
	section.TypeFAQ:         {"faq", "frequently asked", "questions", "q&a"},
	section.TypeTestimonial: {"testimonial", "what our", "customers say", "reviews", "success stories"},
	section.TypePricing:     {"pricing", "price", "cost", "plans", "how much"},
	section.TypeProblem:     {"problem", "challenge", "struggle", "pain point", "why most"},
	section.TypeSolution:    {"solution", "how we solve", "the answer", "fix"},
	section.TypeStatistics:  {"statistics", "numbers", "data", "by the numbers", "research shows"},
	section.TypeExample:     {"example", "for instance", "in practice", "use case"},
	section.TypeCaseStudy:   {"case study", "how we helped", "results for"},
	section.TypeSummary:     {"summary", "conclusion", "final thoughts", "key takeaway", "wrapping up", "in closing"},
	section.TypeCTA:         {"get started", "try it", "sign up", "contact us", "book a", "start your"},
}

func headingVotes(heading string) map[section.SectionType]float64 {
	votes := map[section.SectionType]float64{}
	h := strings.ToLower(strings.TrimSpace(heading))
	if h == "" {
		return votes
	}
	for t, keys := range headingKeywords {
		for _, k := range keys {
			if strings.Contains(h, k) {
				if 1.0 > votes[t] {
					votes[t] = 1.0
				}
			}
		}
	}
	return votes
}

// structureVotes inspects the parsed shape of a section: Q/A pairs point
// at FAQ, ordered step markers at process content, dense lists at
// benefits or features.
func structureVotes(raw section.RawSection) map[section.SectionType]float64 {
	votes := map[section.SectionType]float64{}
	if raw.HasQAPairs {
		votes[section.TypeFAQ] = 1.0
	}
	if raw.HasStepCues {
		votes[section.TypeProcess] = 0.9
		votes[section.TypeHowTo] = 0.6
	}
	for _, l := range raw.Lists {
		if l.Ordered && len(l.Items) >= 3 {
			if votes[section.TypeProcess] < 0.8 {
				votes[section.TypeProcess] = 0.8
			}
		}
		if !l.Ordered && len(l.Items) >= 3 {
			if votes[section.TypeBenefits] < 0.6 {
				votes[section.TypeBenefits] = 0.6
			}
			if votes[section.TypeFeatures] < 0.5 {
				votes[section.TypeFeatures] = 0.5
			}
		}
	}
	if len(raw.Quotes) > 0 {
		votes[section.TypeTestimonial] = 0.5
	}
	return votes
}

var bodyKeywords = map[section.SectionType][]string{
	section.TypeDefinition:  {"refers to", "is defined as", "in other words", "simply put"},
	section.TypeBenefits:    {"you'll gain", "helps you", "saves time", "improves", "boosts"},
	section.TypeProcess:     {"first,", "second,", "then,", "finally,", "next step"},
	section.TypeComparison:  {"on the other hand", "in contrast", "whereas", "better than"},
	section.TypeFAQ:         {"?\n", "common question", "people ask"},
	section.TypeTestimonial: {"according to", "said", "recommends", "five stars"},
	section.TypePricing:     {"per month", "per year", "$", "free trial", "no credit card"},
	section.TypeProblem:     {"the trouble is", "struggle with", "frustrating", "costly mistake"},
	section.TypeSolution:    {"that's where", "solves this", "eliminates"},
	section.TypeStatistics:  {"%", "percent", "survey", "study found", "on average"},
	section.TypeCaseStudy:   {"achieved", "increased by", "within months", "client"},
	section.TypeSummary:     {"to recap", "in summary", "as we've seen", "bottom line"},
	section.TypeCTA:         {"today", "now", "don't wait", "schedule", "free demo"},
}

func keywordVotes(body string) map[section.SectionType]float64 {
	votes := map[section.SectionType]float64{}
	b := strings.ToLower(body)
	if b == "" {
		return votes
	}
	for t, keys := range bodyKeywords {
		hits := 0
		for _, k := range keys {
			if strings.Contains(b, k) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		v := 0.5 + 0.25*float64(hits-1)
		if v > 1 {
			v = 1
		}
		votes[t] = v
	}
	return votes
}

// positionVotes is a weak prior: openers tend to define, closers tend to
// summarize or convert.
func positionVotes(index, total int) map[section.SectionType]float64 {
	votes := map[section.SectionType]float64{}
	if total == 0 {
		return votes
	}
	switch {
	case index == 0:
		votes[section.TypeDefinition] = 0.6
		votes[section.TypeBackground] = 0.4
	case index == total-1:
		votes[section.TypeSummary] = 0.6
		votes[section.TypeCTA] = 0.4
	case index == total-2 && total >= 4:
		votes[section.TypeFAQ] = 0.3
	}
	return votes
}

func positionClass(index, total int) section.Position {
	switch {
	case index == 0:
		return section.PosIntro
	case index == total-1:
		return section.PosConclusion
	default:
		return section.PosBody
	}
}

// relationship derives how a section follows the previous one from type
// continuity and contrast cues. Derived only, never user-edited.
func relationship(prev, cur *section.Section) section.Relationship {
	if prev == nil {
		return section.RelNewTopic
	}
	if cur.Type == prev.Type {
		return section.RelContinues
	}
	lower := strings.ToLower(cur.Raw)
	for _, cue := range []string{"however", "on the other hand", "but ", "in contrast", "unlike"} {
		if strings.HasPrefix(lower, cue) || strings.Contains(firstSentence(lower), cue) {
			return section.RelContrasts
		}
	}
	if (prev.Type == section.TypeProblem && cur.Type == section.TypeSolution) ||
		(prev.Type == section.TypeDefinition && cur.Type == section.TypeBenefits) ||
		cur.Type == section.TypeExample {
		return section.RelElaborates
	}
	return section.RelNewTopic
}

func firstSentence(text string) string {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return text[:i]
	}
	return text
}

func importance(s section.Section) section.Importance {
	switch s.Type {
	case section.TypeSummary, section.TypeCTA:
		return section.ImpKeyTakeaway
	case section.TypeBenefits, section.TypeSolution, section.TypePricing,
		section.TypeCaseStudy, section.TypeComparison:
		return section.ImpCore
	}
	if s.Confidence >= 0.75 && s.WordCount >= 120 {
		return section.ImpCore
	}
	return section.ImpSupporting
}

func parseContent(raw section.RawSection) section.Content {
	c := section.Content{
		Lists:  raw.Lists,
		Quotes: raw.Quotes,
	}
	for _, p := range strings.Split(raw.Body, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		c.Paragraphs = append(c.Paragraphs, p)
	}
	c.Definitions = extractDefinitions(c.Paragraphs)
	return c
}

// extractDefinitions pulls "X is defined as Y" style statements out of
// body paragraphs for downstream definition-box candidates.
func extractDefinitions(paragraphs []string) []section.Definition {
	var defs []section.Definition
	for _, p := range paragraphs {
		lower := strings.ToLower(p)
		for _, marker := range []string{" is defined as ", " refers to "} {
			i := strings.Index(lower, marker)
			if i <= 0 {
				continue
			}
			term := strings.TrimSpace(p[:i])
			rest := strings.TrimSpace(p[i+len(marker):])
			if term == "" || rest == "" || len(strings.Fields(term)) > 6 {
				continue
			}
			defs = append(defs, section.Definition{Term: term, Text: firstSentence(rest)})
			break
		}
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Term < defs[j].Term })
	return defs
}
