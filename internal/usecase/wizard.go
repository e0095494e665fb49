package usecase

import (
	"context"
	"slices"
	"strconv"
	"time"

	"monument-booking/internal/data/repository"
	"monument-booking/internal/dto/request"
	"monument-booking/internal/dto/response"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Booking wizard steps, in order.
const (
	StepDateTime = 1
	StepDetails  = 2
	StepPayment  = 3
)

var stepNames = map[int]string{
	StepDateTime: "date_time",
	StepDetails:  "details",
	StepPayment:  "payment",
}

// TimeSlots are the bookable visit times.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM",
	"03:00 PM", "04:00 PM", "05:00 PM",
}

type dateTimeStep struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required"`
	Pax  int    `json:"pax" validate:"min=1,max=15"`
}

type detailsStep struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type paymentStep struct {
	AcceptTerms bool `json:"acceptTerms" validate:"required"`
}

var wizardMessages = map[string]string{
	"action":        "Unknown wizard action",
	"step":          "Unknown wizard step",
	"date.required": "Please select a date",
	"date.datetime": "Please select a valid date",
	"time":          "Please select a time slot",
	"pax.min":       "At least 1 person is required",
	"pax.max":       "Maximum 15 people allowed",
	"firstName":     "First name is required",
	"lastName":      "Last name is required",
	"email":         "Valid email is required",
	"acceptTerms":   "Please accept the terms of service",
}

const (
	msgPastDate    = "Please select today or a later date"
	msgUnknownSlot = "Please select one of the available time slots"
	msgNoNextStep  = "Payment is the last step, submit the booking instead"
	msgSubmitEarly = "Complete every step before submitting"
)

// WizardService drives the three step booking wizard. The client holds the
// state between steps and nothing is stored until submit.
type WizardService interface {
	Transition(ctx context.Context, monumentID string, req *request.WizardRequest) (*response.WizardResponse, error)
}

type wizardService struct {
	repo     *repository.Repository
	bookings BookingService
	loc      *time.Location
	clock    clock.Clock
	log      *zap.Logger
}

func NewWizardService(repo *repository.Repository, bookings BookingService, config *utils.Config, clk clock.Clock, log *zap.Logger) WizardService {
	return &wizardService{
		repo:     repo,
		bookings: bookings,
		loc:      config.App.Location(),
		clock:    clk,
		log:      log.With(zap.String("service", "wizard")),
	}
}

func (s *wizardService) Transition(ctx context.Context, monumentID string, req *request.WizardRequest) (*response.WizardResponse, error) {
	if verr := utils.ValidateForm(req, wizardMessages); verr != nil {
		return nil, fail(ErrInvalidInput, verr.First(), nil)
	}

	id, err := uuid.Parse(monumentID)
	if err != nil {
		return nil, fail(ErrNotFound, MsgMonumentMissing, err)
	}
	monument, err := s.repo.Monument.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get monument", zap.Error(err), zap.String("monument_id", monumentID))
		return nil, fail(ErrStore, "Failed to load monument", err)
	}
	if monument == nil {
		return nil, fail(ErrNotFound, MsgMonumentMissing, nil)
	}

	resp := s.view(req)

	switch req.Action {
	case request.WizardBack:
		if resp.Step > StepDateTime {
			resp.Step--
		}

	case request.WizardNext:
		if resp.Step == StepPayment {
			return resp, fail(ErrInvalidInput, msgNoNextStep, nil)
		}
		if verr := s.validateStep(resp.Step, req); verr != nil {
			resp.Errors = firstMessages(verr)
			return resp, fail(ErrInvalidInput, verr.First(), nil)
		}
		resp.Step++

	case request.WizardSubmit:
		if resp.Step != StepPayment {
			return resp, fail(ErrInvalidInput, msgSubmitEarly, nil)
		}
		// every step again, the client may have edited earlier ones
		for step := StepDateTime; step <= StepPayment; step++ {
			if verr := s.validateStep(step, req); verr != nil {
				resp.Step = step
				resp.StepName = stepNames[step]
				resp.Errors = firstMessages(verr)
				return resp, fail(ErrInvalidInput, verr.First(), nil)
			}
		}

		booking, err := s.bookings.CreateBooking(ctx, submissionFields(monumentID, req))
		if err != nil {
			return resp, err
		}
		resp.Booking = booking
	}

	resp.StepName = stepNames[resp.Step]
	return resp, nil
}

// submissionFields is the booking form the wizard posts on submit.
func submissionFields(monumentID string, req *request.WizardRequest) map[string]string {
	quote := QuoteFor(req.Pax)
	return map[string]string{
		"monumentId":  monumentID,
		"userName":    req.FirstName + " " + req.LastName,
		"userEmail":   req.Email,
		"bookingDate": req.Date,
		"bookingTime": req.Time,
		"pax":         strconv.Itoa(req.Pax),
		"totalAmount": strconv.Itoa(quote.Total),
	}
}

func (s *wizardService) view(req *request.WizardRequest) *response.WizardResponse {
	return &response.WizardResponse{
		Step:      req.Step,
		StepName:  stepNames[req.Step],
		Date:      req.Date,
		Time:      req.Time,
		Pax:       req.Pax,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		TimeSlots: TimeSlots,
		MinDate:   s.today().Format(time.DateOnly),
		Quote:     quoteToResponse(QuoteFor(max(req.Pax, 0))),
	}
}

func (s *wizardService) today() time.Time {
	y, m, d := s.clock.Now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func (s *wizardService) validateStep(step int, req *request.WizardRequest) *utils.ValidationError {
	switch step {
	case StepDateTime:
		verr := utils.ValidateForm(dateTimeStep{Date: req.Date, Time: req.Time, Pax: req.Pax}, wizardMessages)
		if verr == nil {
			verr = utils.NewValidationError()
		}
		if date, err := time.ParseInLocation(time.DateOnly, req.Date, s.loc); err == nil && date.Before(s.today()) {
			verr.Add("date", msgPastDate)
		}
		if req.Time != "" && !slices.Contains(TimeSlots, req.Time) {
			verr.Add("time", msgUnknownSlot)
		}
		if !verr.HasErrors() {
			return nil
		}
		return verr

	case StepDetails:
		return utils.ValidateForm(detailsStep{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, wizardMessages)

	default:
		return utils.ValidateForm(paymentStep{AcceptTerms: req.AcceptTerms}, wizardMessages)
	}
}

func firstMessages(verr *utils.ValidationError) map[string]string {
	out := make(map[string]string, len(verr.Fields))
	for field, msgs := range verr.Fields {
		out[field] = msgs[0]
	}
	return out
}
