// Package catalog holds the fixed style and room staging tables used for
// prompt construction and per-image edit suggestions.
package catalog

// stylePhrases maps a staging style to the phrase interpolated into the
// enhancement prompt instruction.
var stylePhrases = map[string]string{
	"Modern Neutral": "bright, clean, minimal, neutral colors, modern staging",
	"Luxury":         "upscale materials feel, balanced contrast, premium staging, polished look",
	"Bright Daytime": "daylight feel, brighter exposure, crisp whites, natural shadows",
	"Warm Cozy":      "warmer temperature, inviting tone, soft lighting, cozy staging",
}

const fallbackStylePhrase = "balanced, realistic, tasteful staging"

var styleEdits = map[string][]string{
	"Modern Neutral": {
		"Use neutral color balance and clean whites",
		"Keep decor minimal and modern",
	},
	"Luxury": {
		"Enhance material richness and balanced contrast",
		"Polish finishes for a premium look",
	},
	"Bright Daytime": {
		"Increase exposure for a daylight feel",
		"Preserve natural shadows and crisp whites",
	},
	"Warm Cozy": {
		"Warm the color temperature slightly",
		"Use soft lighting for an inviting tone",
	},
}

var roomEdits = map[string]string{
	"living_room": "Align furniture, clear cluttered surfaces",
	"kitchen":     "Clear counters, enhance appliance finish",
	"bedroom":     "Straighten bedding, soften lighting",
	"bathroom":    "Polish fixtures, clean mirror reflections",
	"dining_room": "Neaten table setting, balance lighting",
}

const fallbackRoomEdit = "Refine staging appropriate for the room"

// StylePhrase returns the prompt phrase for a style, or a generic phrase for
// unrecognized styles.
func StylePhrase(style string) string {
	if phrase, ok := stylePhrases[style]; ok {
		return phrase
	}
	return fallbackStylePhrase
}

// StyleEdits returns the suggested edits for a style, or a single generic
// suggestion for unrecognized styles.
func StyleEdits(style string) []string {
	if edits, ok := styleEdits[style]; ok {
		return append([]string(nil), edits...)
	}
	return []string{"Maintain a balanced, realistic presentation"}
}

// RoomEdits returns the suggested edits for a room type hint. An absent or
// empty hint, or an unrecognized room type, gets the generic fallback.
func RoomEdits(roomTypeHint *string) []string {
	if roomTypeHint == nil || *roomTypeHint == "" {
		return []string{fallbackRoomEdit}
	}
	if edit, ok := roomEdits[*roomTypeHint]; ok {
		return []string{edit}
	}
	return []string{fallbackRoomEdit}
}
