package request

// WizardAction is one transition of the booking wizard.
type WizardAction string

const (
	WizardNext   WizardAction = "next"
	WizardBack   WizardAction = "back"
	WizardSubmit WizardAction = "submit"
)

// WizardRequest carries the whole client-held wizard state plus the
// requested transition. Nothing is stored server side between steps.
type WizardRequest struct {
	Action      WizardAction `json:"action" validate:"required,oneof=next back submit"`
	Step        int          `json:"step" validate:"min=1,max=3"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Pax         int          `json:"pax"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	AcceptTerms bool         `json:"acceptTerms"`
}
