package brief

import (
	"fmt"

	"github.com/okranta/property-brief/internal/catalog"
)

// baselineEdits open every photo's suggestion list, before style and room
// specific edits.
var baselineEdits = []string{
	"Correct lighting and exposure",
	"Optimize color balance",
	"Declutter visible surfaces",
	"Refine staging for the room",
}

const mockEnhancedURLTemplate = "https://example.com/enhanced/%s.jpg"

// MockEnhancedURL derives the deterministic placeholder URL for an enhanced
// version of a photo.
func MockEnhancedURL(imageID string) string {
	return fmt.Sprintf(mockEnhancedURLTemplate, imageID)
}

// BuildImagePlan produces one enhancement plan item per input photo,
// preserving input order. Pure transformation, no network calls.
func BuildImagePlan(images []ImageInput, style string) []PlanItem {
	plan := make([]PlanItem, 0, len(images))
	for _, img := range images {
		edits := append([]string(nil), baselineEdits...)
		edits = append(edits, catalog.StyleEdits(style)...)
		edits = append(edits, catalog.RoomEdits(img.RoomTypeHint)...)

		plan = append(plan, PlanItem{
			ImageID:         img.ImageID,
			OriginalURL:     img.URL,
			RoomTypeHint:    img.RoomTypeHint,
			SuggestedEdits:  edits,
			MockEnhancedURL: MockEnhancedURL(img.ImageID),
		})
	}
	return plan
}
