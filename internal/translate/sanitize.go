package translate

import "strings"

// Rules lists the recognized model-artifact patterns. The set is model
// specific and deliberately data rather than code, so new markers can be
// added through configuration without touching the pipeline.
type Rules struct {
	// CutMarkers end the useful output; everything from the first
	// occurrence onward is dropped.
	CutMarkers []string
	// AnswerMarkers precede the useful output; everything up to and
	// including the last occurrence is dropped.
	AnswerMarkers []string
}

func (r Rules) empty() bool {
	return len(r.CutMarkers) == 0 && len(r.AnswerMarkers) == 0
}

// DefaultRules covers the plamo op-format tags and the answer marker of the
// generic instruction prompt.
func DefaultRules() Rules {
	return Rules{
		CutMarkers:    []string{plamoOpMarker},
		AnswerMarkers: []string{answerMarker},
	}
}

// Sanitizer strips model-added wrapping from raw responses. Content that
// matches no recognized artifact pattern is preserved verbatim: losing
// legitimate translated text is worse than letting an unknown artifact
// through.
type Sanitizer struct {
	rules Rules
}

func NewSanitizer(rules Rules) *Sanitizer {
	if rules.empty() {
		rules = DefaultRules()
	}
	return &Sanitizer{rules: rules}
}

// Clean removes an echo of the prompt, anything past a cut marker, and any
// preamble before an answer marker, then trims surrounding whitespace.
// Cleaning an already-clean string returns it unchanged. A response that is
// nothing but artifacts comes back trimmed but otherwise intact rather than
// as an empty document.
func (s *Sanitizer) Clean(raw, prompt string) string {
	cleaned := raw
	if prompt != "" {
		cleaned = strings.ReplaceAll(cleaned, prompt, "")
	}
	for _, marker := range s.rules.CutMarkers {
		if i := strings.Index(cleaned, marker); i >= 0 {
			cleaned = cleaned[:i]
		}
	}
	for _, marker := range s.rules.AnswerMarkers {
		if i := strings.LastIndex(cleaned, marker); i >= 0 {
			cleaned = cleaned[i+len(marker):]
		}
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return strings.TrimSpace(raw)
	}
	return cleaned
}
