package brief

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/okranta/property-brief/internal/catalog"
	"github.com/okranta/property-brief/internal/llm"
)

// Both completion calls use the same low temperature to keep output stable.
const completionTemperature = 0.2

const enhancementSystemPrompt = "You write concise, production-ready image enhancement prompts for real estate photos. " +
	"Only use the provided inputs. Do not invent property details."

const enhancementUserPromptTemplate = `
	Create one enhancement prompt. Requirements:
	- Must include: lighting correction, color optimization, declutter, staging improvements.
	- Do NOT alter architecture, add fake windows, or change room layout drastically.
	- Style direction: %s.
	- Listing context: %s
	- Room type hint: %s
	Return only the final prompt as plain text.`

// BuildEnhancementPrompt asks the completion service to synthesize a single
// plain-text enhancement instruction from the style, listing context and
// room hint.
func (g *Generator) BuildEnhancementPrompt(ctx context.Context, style, listingDescription string, roomTypeHint *string) (string, error) {
	listingContext := listingDescription
	if listingContext == "" {
		listingContext = "No listing description provided."
	}
	roomHint := "none"
	if roomTypeHint != nil && *roomTypeHint != "" {
		roomHint = *roomTypeHint
	}

	userPrompt := fmt.Sprintf(
		strings.TrimSpace(dedent.Dedent(enhancementUserPromptTemplate)),
		catalog.StylePhrase(style),
		listingContext,
		roomHint,
	)

	text, err := g.llm.Complete(ctx, llm.Request{
		System:      enhancementSystemPrompt,
		User:        userPrompt,
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("enhancement prompt generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
