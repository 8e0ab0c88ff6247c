package translate

import (
	"fmt"
	"strings"
)

// DefaultModel is the plamo translation model the tool was built around.
const DefaultModel = "mlx-community/plamo-2-translate"

const (
	plamoOpMarker = "<|plamo:op|>"
	answerMarker  = "Japanese translation:"
)

const plamoPromptFormat = `<|plamo:op|>dataset
translation
<|plamo:op|>input lang=English
%s
<|plamo:op|>output lang=Japanese writingStyle=polite
`

const genericPromptFormat = "Translate the following English text to Japanese:\n\n%s\n\nJapanese translation:"

func isPlamoTranslate(model string) bool {
	m := strings.ToLower(model)
	return strings.Contains(m, "plamo") && strings.Contains(m, "translate")
}

// BuildPrompt renders the model-specific translation prompt. plamo translation
// models use their official op-format dataset prompt; any other model gets a
// plain instruction prompt with an answer marker the sanitizer recognizes.
func BuildPrompt(model, text string) string {
	if isPlamoTranslate(model) {
		return fmt.Sprintf(plamoPromptFormat, text)
	}
	return fmt.Sprintf(genericPromptFormat, text)
}
