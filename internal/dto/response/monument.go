package response

import (
	"math"
	"strings"
	"time"

	"monument-booking/internal/data/entity"
)

const (
	maxStars     = 5
	summaryWords = 24
)

// Stars is the breakdown used to draw a rating as icons.
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// StarsFor splits a rating into full, half and empty stars. Any fractional
// part earns a half star. Out of range ratings are clamped to [0,5].
func StarsFor(rating float64) Stars {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}

	full := int(math.Floor(rating))
	half := 0
	if math.Mod(rating, 1) != 0 {
		half = 1
	}
	return Stars{Full: full, Half: half, Empty: maxStars - full - half}
}

// Summary cuts a description to its first 24 words, marking the cut with "...".
func Summary(text string) string {
	words := strings.Fields(text)
	if len(words) <= summaryWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:summaryWords], " ") + "..."
}

type MonumentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Summary   string    `json:"summary"`
	ImageURL  string    `json:"imageUrl"`
	Location  string    `json:"location"`
	Rating    float64   `json:"rating"`
	Stars     Stars     `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

type MonumentDetailResponse struct {
	MonumentResponse
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func MonumentToResponse(m *entity.Monument) MonumentResponse {
	return MonumentResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Summary:   Summary(m.Description),
		ImageURL:  m.ImageURL,
		Location:  m.Location,
		Rating:    m.Rating,
		Stars:     StarsFor(m.Rating),
		CreatedAt: m.CreatedAt,
	}
}

func MonumentToDetailResponse(m *entity.Monument) MonumentDetailResponse {
	return MonumentDetailResponse{
		MonumentResponse: MonumentToResponse(m),
		Description:      m.Description,
		UpdatedAt:        m.UpdatedAt,
	}
}
