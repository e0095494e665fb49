package entity

// Monument is a bookable site. Rows are written once by the admin flow and never edited.
type Monument struct {
	BaseNoDelete
	Name        string  `db:"name"`
	Description string  `db:"description"`
	ImageURL    string  `db:"image_url"`
	Location    string  `db:"location"`
	Rating      float64 `db:"rating"`
}
