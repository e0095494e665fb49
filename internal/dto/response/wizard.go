package response

// WizardResponse is the wizard state after a transition. Errors holds the
// field messages that kept it on the current step.
type WizardResponse struct {
	Step      int               `json:"step"`
	StepName  string            `json:"stepName"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Pax       int               `json:"pax"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	TimeSlots []string          `json:"timeSlots"`
	MinDate   string            `json:"minDate"`
	Quote     QuoteResponse     `json:"quote"`
	Errors    map[string]string `json:"errors,omitempty"`
	Booking   *BookingResponse  `json:"booking,omitempty"`
}
