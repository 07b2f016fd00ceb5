// Package insights provides mock per-zipcode area data across four fixed
// categories. The tables are static and keyed by exact zipcode match with a
// per-category default, so every lookup succeeds regardless of input.
package insights

// RiskLevel classifies reported crime risk for an area.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Category is a single insight category record for a zipcode. RiskLevel is
// only set for the crime category.
type Category struct {
	Summary    string    `json:"summary"`
	Highlights []string  `json:"highlights"`
	RiskLevel  RiskLevel `json:"risk_level,omitempty"`
	Source     string    `json:"source"`
	UpdatedAt  string    `json:"updated_at"`
}

// Zipcode holds the four insight categories for one zipcode. All four
// fields are always populated.
type Zipcode struct {
	Community Category `json:"community"`
	Climate   Category `json:"climate"`
	Schools   Category `json:"schools"`
	Crime     Category `json:"crime"`
}

const datasetUpdatedAt = "2026-01-01"

type entry struct {
	summary    string
	riskLevel  RiskLevel
	highlights []string
}

var communityData = map[string]entry{
	"95112": {
		summary: "Urban neighborhood with mixed residential and commercial blocks.",
		highlights: []string{
			"Walkable streets and local shops",
			"Access to transit corridors",
			"Active neighborhood associations",
		},
	},
}

var communityDefault = entry{
	summary: "General community profile for the area.",
	highlights: []string{
		"Local amenities nearby",
		"Mixed housing types",
		"Community events",
	},
}

var climateData = map[string]entry{
	"95112": {
		summary: "Mild climate with warm summers and cool winters.",
		highlights: []string{
			"Warm summer afternoons",
			"Cool evenings in winter",
			"Low annual snowfall",
		},
	},
}

var climateDefault = entry{
	summary: "Typical regional climate patterns.",
	highlights: []string{
		"Seasonal temperature variation",
		"Occasional rain",
		"Moderate humidity",
	},
}

var schoolData = map[string]entry{
	"95112": {
		summary: "Schools show mixed performance with a range of programs.",
		highlights: []string{
			"Varied academic outcomes across schools",
			"STEM and arts programs available",
			"Some schools within walking distance",
		},
	},
}

var schoolDefault = entry{
	summary: "School options vary by zone.",
	highlights: []string{
		"Public and private options",
		"Enrollment varies",
		"Program availability differs",
	},
}

var crimeData = map[string]entry{
	"95112": {
		summary:   "Crime levels are moderate relative to nearby areas.",
		riskLevel: RiskMedium,
		highlights: []string{
			"Property incidents are the most common",
			"Police presence around transit hubs",
			"Neighborhood watch activity reported",
		},
	},
}

var crimeDefault = entry{
	summary:   "Crime profile varies within the area.",
	riskLevel: RiskMedium,
	highlights: []string{
		"Mixed incident types reported",
		"Some streets are quieter than others",
		"Local safety initiatives exist",
	},
}

func lookup(data map[string]entry, fallback entry, zipcode string) entry {
	if e, ok := data[zipcode]; ok {
		return e
	}
	return fallback
}

func (e entry) category(source string) Category {
	return Category{
		Summary:    e.summary,
		Highlights: append([]string(nil), e.highlights...),
		RiskLevel:  e.riskLevel,
		Source:     source,
		UpdatedAt:  datasetUpdatedAt,
	}
}

// FetchCommunity returns the community profile for a zipcode.
func FetchCommunity(zipcode string) Category {
	return lookup(communityData, communityDefault, zipcode).category("mock_community_dataset_v1")
}

// FetchClimate returns the climate profile for a zipcode.
func FetchClimate(zipcode string) Category {
	return lookup(climateData, climateDefault, zipcode).category("mock_climate_dataset_v1")
}

// FetchSchools returns the school profile for a zipcode.
func FetchSchools(zipcode string) Category {
	return lookup(schoolData, schoolDefault, zipcode).category("mock_school_dataset_v1")
}

// FetchCrime returns the crime profile for a zipcode, including a risk level.
func FetchCrime(zipcode string) Category {
	return lookup(crimeData, crimeDefault, zipcode).category("mock_crime_dataset_v1")
}

// FetchZipcode assembles all four insight categories for a zipcode.
func FetchZipcode(zipcode string) Zipcode {
	return Zipcode{
		Community: FetchCommunity(zipcode),
		Climate:   FetchClimate(zipcode),
		Schools:   FetchSchools(zipcode),
		Crime:     FetchCrime(zipcode),
	}
}
