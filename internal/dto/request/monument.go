package request

import "monument-booking/pkg/utils"

// MonumentForm holds the raw admin form values. Rating stays a string so
// it can be coerced the way the browser form submits it.
type MonumentForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
	ImageURL    string `form:"imageUrl" validate:"url"`
	Location    string `form:"location" validate:"required"`
	Rating      string `form:"rating" validate:"coerce_num,num_min=1,num_max=5"`
}

var MonumentMessages = map[string]string{
	"name":              "Name is required",
	"description":       "Description is required",
	"imageUrl":          "Invalid image URL",
	"location":          "Location is required",
	"rating.coerce_num": "Expected number, received nan",
	"rating.num_min":    "Rating must be at least 1",
	"rating.num_max":    "Rating must be at most 5",
}

func MonumentFormFrom(fields map[string]string) MonumentForm {
	return MonumentForm{
		Name:        fields["name"],
		Description: fields["description"],
		ImageURL:    fields["imageUrl"],
		Location:    fields["location"],
		Rating:      fields["rating"],
	}
}

// MonumentPayload is a validated monument form.
type MonumentPayload struct {
	Name        string
	Description string
	ImageURL    string
	Location    string
	Rating      float64
}

// Validate returns the typed payload or every field message.
func (f MonumentForm) Validate() (*MonumentPayload, *utils.ValidationError) {
	if verr := utils.ValidateForm(f, MonumentMessages); verr != nil {
		return nil, verr
	}
	rating, _ := utils.CoerceNumber(f.Rating)
	return &MonumentPayload{
		Name:        f.Name,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Location:    f.Location,
		Rating:      rating,
	}, nil
}
