package targets

import (
	"encoding/json"
	"strings"
)

// aiTargets is the JSON shape requested from the model.
type aiTargets struct {
	InferredProfile string   `json:"inferredProfile"`
	TargetKeywords  []string `json:"targetKeywords"`
	TargetSkills    []string `json:"targetSkills"`
}

// parseAITargets turns raw model output into a tagged result: (parsed, true)
// on success, (zero, false) on any malformed text. It never panics and never
// returns an error; unparsable output is an expected condition.
func parseAITargets(raw string) (aiTargets, bool) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return aiTargets{}, false
	}

	var parsed aiTargets
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		return parsed, true
	}

	// Some models wrap the object in prose; retry on the outermost {...}.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return aiTargets{}, false
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return aiTargets{}, false
	}
	return parsed, true
}

func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// dedupeLower lowercases, trims, and dedupes terms preserving first-seen
// order, truncating at max items.
func dedupeLower(terms []string, max int) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		normalized := strings.ToLower(strings.TrimSpace(term))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
