package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"github.com/okranta/property-brief/internal/insights"
	"github.com/okranta/property-brief/internal/llm"
)

const maxHighlights = 5

const narrativeSystemPrompt = "You are a senior real estate analyst. Produce a professional Markdown report. " +
	"Use only the provided data. Do not invent facts."

const narrativeUserPromptTemplate = `
	Create a Markdown report with these sections, in order:
	Overview
	Image Enhancement Plan
	Images
	Community
	Climate
	Schools
	Crime & Safety
	Risks / What to Verify

	Rules:
	- Use ONLY the provided data.
	- Keep it concise and professional.
	- For Images, use the provided image_markdown_blocks verbatim.
	- For Image Enhancement Plan, use image_plan_lines verbatim as bullets.
	- For Risks, use risk_flags; if empty, say no specific risks identified.

	Data:
	%s`

var confidenceNotes = []string{
	"Zipcode insights are mock data and should be verified with local sources",
	"Image enhancement suggestions are stylistic guidelines, not executed edits",
}

var schoolRiskKeywords = []string{"varied", "mixed", "uneven"}

var climateRiskKeywords = []string{"heat", "hot", "storm", "flood", "snow"}

// narrativePayload is the structured data handed to the completion service
// for rendering the narrative report.
type narrativePayload struct {
	ListingDescription  string           `json:"listing_description"`
	ZipcodeInsights     insights.Zipcode `json:"zipcode_insights"`
	ImageEnhancePlan    []PlanItem       `json:"image_enhance_plan"`
	ImagePlanLines      []string         `json:"image_plan_lines"`
	ImageMarkdownBlocks []string         `json:"image_markdown_blocks"`
	RiskFlags           []string         `json:"risk_flags"`
}

// BuildBrief derives highlights and risk flags from the insight and plan
// data, then asks the completion service to render the Markdown narrative.
func (g *Generator) BuildBrief(ctx context.Context, listingDescription string, zipcodeInsights insights.Zipcode, plan []PlanItem) (*Brief, error) {
	highlights := deriveHighlights(listingDescription, zipcodeInsights, len(plan))
	riskFlags := deriveRiskFlags(listingDescription, zipcodeInsights, len(plan))

	payload, err := json.MarshalIndent(narrativePayload{
		ListingDescription:  listingDescription,
		ZipcodeInsights:     zipcodeInsights,
		ImageEnhancePlan:    plan,
		ImagePlanLines:      imagePlanLines(plan),
		ImageMarkdownBlocks: imageMarkdownBlocks(plan),
		RiskFlags:           riskFlags,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal narrative payload: %w", err)
	}

	userPrompt := fmt.Sprintf(
		strings.TrimSpace(dedent.Dedent(narrativeUserPromptTemplate)),
		payload,
	)

	narrative, err := g.llm.Complete(ctx, llm.Request{
		System:      narrativeSystemPrompt,
		User:        userPrompt,
		Temperature: completionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	return &Brief{
		Highlights:        capHighlights(highlights),
		RiskFlags:         riskFlags,
		ConfidenceNotes:   append([]string(nil), confidenceNotes...),
		NarrativeMarkdown: strings.TrimSpace(narrative),
	}, nil
}

func deriveHighlights(listingDescription string, zipcodeInsights insights.Zipcode, planLen int) []string {
	var highlights []string
	if listingDescription != "" {
		highlights = append(highlights, "Listing description: "+listingDescription)
	}
	highlights = append(highlights, fmt.Sprintf("Planned image enhancements for %d photos", planLen))
	highlights = append(highlights,
		"Community: "+zipcodeInsights.Community.Summary,
		"Climate: "+zipcodeInsights.Climate.Summary,
		"Schools: "+zipcodeInsights.Schools.Summary,
	)
	return highlights
}

func capHighlights(highlights []string) []string {
	if len(highlights) > maxHighlights {
		return highlights[:maxHighlights]
	}
	return highlights
}

// deriveRiskFlags applies the fixed checks in order: crime risk level,
// school keywords, climate keywords, missing description, empty plan.
func deriveRiskFlags(listingDescription string, zipcodeInsights insights.Zipcode, planLen int) []string {
	flags := []string{}

	crimeRisk := zipcodeInsights.Crime.RiskLevel
	if crimeRisk == insights.RiskMedium || crimeRisk == insights.RiskHigh {
		flags = append(flags, fmt.Sprintf("Crime risk level reported as %s", crimeRisk))
	}

	schoolText := strings.ToLower(strings.Join(zipcodeInsights.Schools.Highlights, " "))
	if containsAny(schoolText, schoolRiskKeywords) {
		flags = append(flags, "School performance appears variable across zones")
	}

	climateText := strings.ToLower(strings.Join(zipcodeInsights.Climate.Highlights, " "))
	if containsAny(climateText, climateRiskKeywords) {
		flags = append(flags, "Climate notes include seasonal extremes or events")
	}

	if listingDescription == "" {
		flags = append(flags, "Listing description is missing or minimal")
	}
	if planLen == 0 {
		flags = append(flags, "No image enhancement plan generated")
	}

	return flags
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func roomLabel(roomTypeHint *string) string {
	if roomTypeHint == nil || *roomTypeHint == "" {
		return "unspecified room"
	}
	return *roomTypeHint
}

func imagePlanLines(plan []PlanItem) []string {
	lines := make([]string, 0, len(plan))
	for _, item := range plan {
		lines = append(lines, fmt.Sprintf("- %s: %s", item.ImageID, roomLabel(item.RoomTypeHint)))
	}
	return lines
}

func imageMarkdownBlocks(plan []PlanItem) []string {
	blocks := make([]string, 0, len(plan))
	for _, item := range plan {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("**%s** (%s)", item.ImageID, roomLabel(item.RoomTypeHint)),
			fmt.Sprintf("Original: ![](%s)", item.OriginalURL),
			fmt.Sprintf("Enhanced (mock): ![](%s)", item.MockEnhancedURL),
		}, "\n"))
	}
	return blocks
}
