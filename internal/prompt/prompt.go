// Package prompt renders the instruction sent to the generative-text
// service. Rendering is pure: identical inputs produce identical prompts.
package prompt

import (
	"fmt"
	"strings"

	"gistify/internal/errortypes"
)

// DefaultTargetWords is substituted when the caller gives no target length.
const DefaultTargetWords = 50

// Build assembles a summarization prompt from the source text and the
// requested approximate word count. The source text is embedded verbatim
// inside a delimited section so the model cannot confuse it with the
// instruction. A target larger than the input's own word count is allowed.
func Build(text string, targetWords int) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errortypes.New(errortypes.KindValidation, "source text is empty")
	}

	if targetWords <= 0 {
		targetWords = DefaultTargetWords
	}

	var b strings.Builder
	b.WriteString("Please summarize the following text concisely.\n")
	fmt.Fprintf(&b, "Aim for a summary of approximately %d words.\n", targetWords)
	b.WriteString(`Do not start the summary with phrases like "Here is a summary of the text:" or "The text is about:".`)
	b.WriteString("\nJust provide the direct summary.\n")
	b.WriteString("\nText to summarize:\n---\n")
	b.WriteString(trimmed)
	b.WriteString("\n---\n\nSummary:\n")

	return b.String(), nil
}
