package entity

import "strings"

// TravelPackage is a row of the packages sheet after transformation.
type TravelPackage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Days          int      `json:"days"`
	Price         int      `json:"price"`
	Location      string   `json:"location"`
	Itinerary     string   `json:"itinerary"`
	ItineraryList []string `json:"itineraryList"`
	Featured      bool     `json:"featured"`
	ImageURL      string   `json:"image_url"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
}

// ParseItinerary splits the sheet's pipe-separated day list.
func ParseItinerary(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, "|")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		days = append(days, strings.TrimSpace(p))
	}
	return days
}

// ParseTags splits the sheet's comma-separated tag list.
func ParseTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// RecommendationTags is the closed vocabulary the AI prompt is allowed to
// answer with. Tags outside this list are discarded.
var RecommendationTags = []string{
	"family", "culture", "nature", "relax", "beach", "mountain",
	"party", "adventure", "snow", "heritage", "luxury", "honeymoon",
}

func IsKnownTag(tag string) bool {
	for _, t := range RecommendationTags {
		if t == tag {
			return true
		}
	}
	return false
}
