// Package brief assembles a property brief document for a real-estate
// listing: a generated image enhancement prompt, a per-image edit suggestion
// plan, mock zipcode insights, and an LLM-rendered Markdown narrative.
package brief

import (
	"context"
	"sort"
	"strings"

	"github.com/okranta/property-brief/internal/insights"
	"github.com/okranta/property-brief/internal/llm"
)

// ImageInput is one listing photo provided by the caller. RoomTypeHint is
// nil when the caller does not know the room type.
type ImageInput struct {
	ImageID      string  `json:"image_id"`
	URL          string  `json:"url"`
	RoomTypeHint *string `json:"room_type_hint,omitempty"`
}

// PlanItem is the enhancement suggestion plan for a single photo. The edits
// are suggestions only; no image is ever modified.
type PlanItem struct {
	ImageID         string   `json:"image_id"`
	OriginalURL     string   `json:"original_url"`
	RoomTypeHint    *string  `json:"room_type_hint"`
	SuggestedEdits  []string `json:"suggested_edits"`
	MockEnhancedURL string   `json:"mock_enhanced_url"`
}

// Brief is the derived summary wrapped around the narrative report.
type Brief struct {
	Highlights        []string `json:"highlights"`
	RiskFlags         []string `json:"risk_flags"`
	ConfidenceNotes   []string `json:"confidence_notes"`
	NarrativeMarkdown string   `json:"narrative_markdown"`
}

// Result is the complete property brief document.
type Result struct {
	EnhancementPrompt string           `json:"enhancement_prompt"`
	ImageEnhancePlan  []PlanItem       `json:"image_enhance_plan"`
	ZipcodeInsights   insights.Zipcode `json:"zipcode_insights"`
	Brief             Brief            `json:"brief"`
}

// Generator assembles property briefs using the given completion client.
type Generator struct {
	llm llm.Completer
}

// NewGenerator creates a brief generator backed by the given completer.
func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{llm: completer}
}

// Generate builds the full property brief for a set of listing photos.
// The enhancement prompt call runs first; if it fails, none of the
// deterministic steps are attempted. Exactly two completion calls are made
// per invocation, enhancement prompt before narrative.
func (g *Generator) Generate(ctx context.Context, images []ImageInput, style, listingDescription, zipcode string) (*Result, error) {
	roomHint := combinedRoomHint(images)

	enhancementPrompt, err := g.BuildEnhancementPrompt(ctx, style, listingDescription, roomHint)
	if err != nil {
		return nil, err
	}

	plan := BuildImagePlan(images, style)
	zipcodeInsights := insights.FetchZipcode(zipcode)

	b, err := g.BuildBrief(ctx, listingDescription, zipcodeInsights, plan)
	if err != nil {
		return nil, err
	}

	return &Result{
		EnhancementPrompt: enhancementPrompt,
		ImageEnhancePlan:  plan,
		ZipcodeInsights:   zipcodeInsights,
		Brief:             *b,
	}, nil
}

// combinedRoomHint joins the distinct non-empty room type hints across the
// photos into a single sorted, comma-separated hint for prompt generation.
// Returns nil when no photo carries a hint.
func combinedRoomHint(images []ImageInput) *string {
	seen := make(map[string]bool)
	var hints []string
	for _, img := range images {
		if img.RoomTypeHint == nil || *img.RoomTypeHint == "" || seen[*img.RoomTypeHint] {
			continue
		}
		seen[*img.RoomTypeHint] = true
		hints = append(hints, *img.RoomTypeHint)
	}
	if len(hints) == 0 {
		return nil
	}
	sort.Strings(hints)
	combined := strings.Join(hints, ", ")
	return &combined
}
