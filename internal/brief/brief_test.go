package brief

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okranta/property-brief/internal/insights"
	"github.com/okranta/property-brief/internal/llm"
)

func strPtr(s string) *string {
	return &s
}

// stubCompleter records completion requests and plays back canned responses
// in order.
type stubCompleter struct {
	requests  []llm.Request
	responses []string
	err       error
}

func (s *stubCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if i := len(s.requests) - 1; i < len(s.responses) {
		return s.responses[i], nil
	}
	return "stub response", nil
}

func TestCombinedRoomHint(t *testing.T) {
	tests := []struct {
		name   string
		images []ImageInput
		want   *string
	}{
		{"no images", nil, nil},
		{"no hints", []ImageInput{{ImageID: "a"}, {ImageID: "b"}}, nil},
		{"empty hint ignored", []ImageInput{{ImageID: "a", RoomTypeHint: strPtr("")}}, nil},
		{"single hint", []ImageInput{{ImageID: "a", RoomTypeHint: strPtr("kitchen")}}, strPtr("kitchen")},
		{
			"deduplicated and sorted",
			[]ImageInput{
				{ImageID: "a", RoomTypeHint: strPtr("kitchen")},
				{ImageID: "b", RoomTypeHint: strPtr("bedroom")},
				{ImageID: "c", RoomTypeHint: strPtr("kitchen")},
			},
			strPtr("bedroom, kitchen"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combinedRoomHint(tt.images))
		})
	}
}

func TestGenerate(t *testing.T) {
	stub := &stubCompleter{responses: []string{"  the enhancement prompt  ", "# Report\n"}}
	g := NewGenerator(stub)

	images := []ImageInput{
		{ImageID: "img_1", URL: "https://example.com/living.jpg", RoomTypeHint: strPtr("living_room")},
		{ImageID: "img_2", URL: "https://example.com/kitchen.jpg", RoomTypeHint: strPtr("kitchen")},
	}

	result, err := g.Generate(context.Background(), images, "Modern Neutral", "Bright open layout.", "95112")
	require.NoError(t, err)

	// Two calls, enhancement prompt strictly before narrative.
	require.Len(t, stub.requests, 2)
	assert.Equal(t, enhancementSystemPrompt, stub.requests[0].System)
	assert.Equal(t, narrativeSystemPrompt, stub.requests[1].System)
	assert.Contains(t, stub.requests[0].User, "Room type hint: kitchen, living_room")

	assert.Equal(t, "the enhancement prompt", result.EnhancementPrompt)
	assert.Len(t, result.ImageEnhancePlan, 2)
	assert.Equal(t, "img_1", result.ImageEnhancePlan[0].ImageID)
	assert.Equal(t, insights.FetchZipcode("95112"), result.ZipcodeInsights)
	assert.Equal(t, "# Report", result.Brief.NarrativeMarkdown)
}

func TestGenerateUnknownZipcodeScenario(t *testing.T) {
	stub := &stubCompleter{}
	g := NewGenerator(stub)

	images := []ImageInput{
		{ImageID: "img_1", URL: "https://x/a.jpg", RoomTypeHint: strPtr("kitchen")},
	}

	result, err := g.Generate(context.Background(), images, "Luxury", "", "00000")
	require.NoError(t, err)

	// Default crime table reports Medium, so the crime flag is expected
	// alongside the missing-description flag.
	assert.Contains(t, result.Brief.RiskFlags, "Crime risk level reported as Medium")
	assert.Contains(t, result.Brief.RiskFlags, "Listing description is missing or minimal")
	assert.Equal(t, insights.RiskMedium, result.ZipcodeInsights.Crime.RiskLevel)
}

func TestGeneratePromptFailureIsFailFast(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exceeded")}
	g := NewGenerator(stub)

	result, err := g.Generate(context.Background(), nil, "Luxury", "desc", "95112")
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "enhancement prompt generation failed")
	// Only the first call was attempted.
	assert.Len(t, stub.requests, 1)
}

func TestResultJSONKeys(t *testing.T) {
	stub := &stubCompleter{}
	g := NewGenerator(stub)

	result, err := g.Generate(context.Background(), []ImageInput{
		{ImageID: "img_1", URL: "https://x/a.jpg"},
	}, "Luxury", "desc", "95112")
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "enhancement_prompt")
	assert.Contains(t, doc, "image_enhance_plan")
	assert.Contains(t, doc, "zipcode_insights")
	assert.Contains(t, doc, "brief")

	var zc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["zipcode_insights"], &zc))
	for _, key := range []string{"community", "climate", "schools", "crime"} {
		assert.Contains(t, zc, key)
	}

	var items []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["image_enhance_plan"], &items))
	require.Len(t, items, 1)
	for _, key := range []string{"image_id", "original_url", "room_type_hint", "suggested_edits", "mock_enhanced_url"} {
		assert.Contains(t, items[0], key)
	}

	var b map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["brief"], &b))
	for _, key := range []string{"highlights", "risk_flags", "confidence_notes", "narrative_markdown"} {
		assert.Contains(t, b, key)
	}
}
