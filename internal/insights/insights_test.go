package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchZipcodeKnown(t *testing.T) {
	got := FetchZipcode("95112")

	assert.Equal(t, Category{
		Summary: "Urban neighborhood with mixed residential and commercial blocks.",
		Highlights: []string{
			"Walkable streets and local shops",
			"Access to transit corridors",
			"Active neighborhood associations",
		},
		Source:    "mock_community_dataset_v1",
		UpdatedAt: "2026-01-01",
	}, got.Community)

	assert.Equal(t, Category{
		Summary: "Mild climate with warm summers and cool winters.",
		Highlights: []string{
			"Warm summer afternoons",
			"Cool evenings in winter",
			"Low annual snowfall",
		},
		Source:    "mock_climate_dataset_v1",
		UpdatedAt: "2026-01-01",
	}, got.Climate)

	assert.Equal(t, Category{
		Summary: "Schools show mixed performance with a range of programs.",
		Highlights: []string{
			"Varied academic outcomes across schools",
			"STEM and arts programs available",
			"Some schools within walking distance",
		},
		Source:    "mock_school_dataset_v1",
		UpdatedAt: "2026-01-01",
	}, got.Schools)

	assert.Equal(t, Category{
		Summary:   "Crime levels are moderate relative to nearby areas.",
		RiskLevel: RiskMedium,
		Highlights: []string{
			"Property incidents are the most common",
			"Police presence around transit hubs",
			"Neighborhood watch activity reported",
		},
		Source:    "mock_crime_dataset_v1",
		UpdatedAt: "2026-01-01",
	}, got.Crime)
}

func TestFetchZipcodeUnknown(t *testing.T) {
	want := Zipcode{
		Community: Category{
			Summary: "General community profile for the area.",
			Highlights: []string{
				"Local amenities nearby",
				"Mixed housing types",
				"Community events",
			},
			Source:    "mock_community_dataset_v1",
			UpdatedAt: "2026-01-01",
		},
		Climate: Category{
			Summary: "Typical regional climate patterns.",
			Highlights: []string{
				"Seasonal temperature variation",
				"Occasional rain",
				"Moderate humidity",
			},
			Source:    "mock_climate_dataset_v1",
			UpdatedAt: "2026-01-01",
		},
		Schools: Category{
			Summary: "School options vary by zone.",
			Highlights: []string{
				"Public and private options",
				"Enrollment varies",
				"Program availability differs",
			},
			Source:    "mock_school_dataset_v1",
			UpdatedAt: "2026-01-01",
		},
		Crime: Category{
			Summary:   "Crime profile varies within the area.",
			RiskLevel: RiskMedium,
			Highlights: []string{
				"Mixed incident types reported",
				"Some streets are quieter than others",
				"Local safety initiatives exist",
			},
			Source:    "mock_crime_dataset_v1",
			UpdatedAt: "2026-01-01",
		},
	}

	for _, zipcode := range []string{"00000", "", "not-a-zip", "951125"} {
		assert.Equal(t, want, FetchZipcode(zipcode), "zipcode %q", zipcode)
	}
}

func TestFetchReturnsFreshHighlights(t *testing.T) {
	a := FetchCommunity("95112")
	a.Highlights[0] = "mutated"

	b := FetchCommunity("95112")
	assert.Equal(t, "Walkable streets and local shops", b.Highlights[0])
}
