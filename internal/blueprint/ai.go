package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pageforge/internal/assembler"
	"pageforge/internal/component"
	"pageforge/internal/section"
	"pageforge/internal/selector"
)

// TextCompleter is the optional generative-model collaborator: one
// instruction+context string in, free text out. The text is expected to
// contain an embedded JSON document but may carry commentary or fencing
// around it.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenaiCompleter implements TextCompleter over the Gemini API.
type GenaiCompleter struct {
	client *genai.Client
	model  string
}

func NewGenaiCompleter(ctx context.Context, apiKey, model string) (*GenaiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenaiCompleter{client: client, model: model}, nil
}

func (c *GenaiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// aiPlan is the structured document we expect inside the model output.
type aiPlan struct {
	Sections []aiSectionPick `json:"sections"`
}

type aiSectionPick struct {
	SectionID string `json:"section_id"`
	Component string `json:"component"`
	Reason    string `json:"reason,omitempty"`
}

// tryAIDesigns asks the model for per-section component picks and feeds
// valid picks into the deterministic selector as preferences, so rhythm
// and coherence rules still hold. Any failure, malformed output included,
// reports ok=false and the caller falls back to the heuristic path.
func (g *Generator) tryAIDesigns(ctx context.Context, genCtx assembler.Context, strategy PageStrategy, req Request) ([]SectionDesign, bool) {
	out, err := g.completer.Complete(ctx, buildLayoutPrompt(genCtx, strategy))
	if err != nil {
		g.logger.Warn("generative layout pass failed, using heuristic path", "err", err)
		return nil, false
	}

	plan, err := parseAIPlan(out)
	if err != nil {
		g.logger.Warn("could not parse generative layout output, using heuristic path", "err", err)
		return nil, false
	}

	picks := map[string]component.Type{}
	for _, p := range plan.Sections {
		t := component.Type(p.Component)
		if t.Valid() {
			picks[p.SectionID] = t
		}
	}
	if len(picks) == 0 {
		return nil, false
	}

	designs := make([]SectionDesign, 0, len(genCtx.Sections))
	var recent []component.Type
	for i, sec := range genCtx.Sections {
		prefer := req.Prefer
		if pick, ok := picks[sec.ID]; ok && isCandidate(sec.Type, pick) {
			prefer = append(append([]component.Type(nil), prefer...), pick)
		}
		sel := selector.Select(selector.Input{
			Section: sec,
			Ctx:     genCtx,
			Style:   strategy.VisualStyle,
			Index:   i,
			Total:   len(genCtx.Sections),
			Recent:  recent,
			Avoid:   req.Avoid,
			Prefer:  prefer,
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
	return designs, true
}

func isCandidate(st section.SectionType, pick component.Type) bool {
	for _, c := range selector.CandidatesFor(st) {
		if c == pick {
			return true
		}
	}
	return false
}

func buildLayoutPrompt(genCtx assembler.Context, strategy PageStrategy) string {
	var sb strings.Builder
	sb.WriteString("You design page layouts. For each section below, pick the single best presentation component.\n")
	fmt.Fprintf(&sb, "Brand: %s (%s), tone %s. Visual style: %s, pacing %s.\n\n",
		genCtx.Brand.Name, genCtx.Norms.Industry, genCtx.Brand.Tone, strategy.VisualStyle, strategy.Pacing)
	sb.WriteString("Sections:\n")
	for _, s := range genCtx.Sections {
		candidates := selector.CandidatesFor(s.Type)
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = string(c)
		}
		fmt.Fprintf(&sb, "- id=%s type=%s heading=%q candidates=[%s]\n",
			s.ID, s.Type, s.Heading, strings.Join(names, ", "))
	}
	sb.WriteString("\nRespond with JSON only: {\"sections\":[{\"section_id\":\"...\",\"component\":\"...\",\"reason\":\"...\"}]}\n")
	return sb.String()
}

// parseAIPlan pulls the embedded JSON document out of free model text,
// tolerating code fences and surrounding commentary.
func parseAIPlan(text string) (*aiPlan, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON document found in model output")
	}
	var plan aiPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("malformed layout plan: %w", err)
	}
	if len(plan.Sections) == 0 {
		return nil, fmt.Errorf("layout plan contains no sections")
	}
	return &plan, nil
}

func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
