package request

import "monument-booking/pkg/utils"

// BookingForm holds the raw booking form values in submission order.
type BookingForm struct {
	MonumentID  string `form:"monumentId" validate:"required"`
	UserName    string `form:"userName" validate:"required"`
	UserEmail   string `form:"userEmail" validate:"required,email"`
	BookingDate string `form:"bookingDate" validate:"required"`
	BookingTime string `form:"bookingTime" validate:"required"`
	Pax         string `form:"pax" validate:"coerce_num,num_min=1,num_max=15,num_int"`
	TotalAmount string `form:"totalAmount" validate:"coerce_num,num_min=1"`
}

var BookingMessages = map[string]string{
	"monumentId":             "Monument ID is required",
	"userName":               "Name is required",
	"userEmail":              "Valid email is required",
	"bookingDate":            "Booking date is required",
	"bookingTime":            "Booking time is required",
	"pax.coerce_num":         "Expected number, received nan",
	"pax.num_min":            "At least 1 person is required",
	"pax.num_max":            "Maximum 15 people allowed",
	"pax.num_int":            "Expected integer, received float",
	"totalAmount.coerce_num": "Expected number, received nan",
	"totalAmount.num_min":    "Total amount is required",
}

func BookingFormFrom(fields map[string]string) BookingForm {
	return BookingForm{
		MonumentID:  fields["monumentId"],
		UserName:    fields["userName"],
		UserEmail:   fields["userEmail"],
		BookingDate: fields["bookingDate"],
		BookingTime: fields["bookingTime"],
		Pax:         fields["pax"],
		TotalAmount: fields["totalAmount"],
	}
}

// BookingPayload is a validated booking form. Date and time are still the
// raw strings the visitor picked.
type BookingPayload struct {
	MonumentID  string
	UserName    string
	UserEmail   string
	BookingDate string
	BookingTime string
	Pax         int
	TotalAmount float64
}

func (f BookingForm) Validate() (*BookingPayload, *utils.ValidationError) {
	if verr := utils.ValidateForm(f, BookingMessages); verr != nil {
		return nil, verr
	}
	pax, _ := utils.CoerceNumber(f.Pax)
	total, _ := utils.CoerceNumber(f.TotalAmount)
	return &BookingPayload{
		MonumentID:  f.MonumentID,
		UserName:    f.UserName,
		UserEmail:   f.UserEmail,
		BookingDate: f.BookingDate,
		BookingTime: f.BookingTime,
		Pax:         int(pax),
		TotalAmount: total,
	}, nil
}
