package adaptor

import (
	"context"
	"io"

	"monument-booking/internal/dto/request"
	"monument-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockMonumentService struct{ mock.Mock }

func (m *mockMonumentService) GetMonuments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MonumentResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.MonumentResponse]), args.Error(1)
}

func (m *mockMonumentService) GetMonumentByID(ctx context.Context, monumentID string) (*response.MonumentDetailResponse, error) {
	args := m.Called(ctx, monumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MonumentDetailResponse), args.Error(1)
}

func (m *mockMonumentService) GetQuote(ctx context.Context, monumentID string, pax int) (*response.QuoteResponse, error) {
	args := m.Called(ctx, monumentID, pax)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QuoteResponse), args.Error(1)
}

func (m *mockMonumentService) CreateMonument(ctx context.Context, fields map[string]string) (*response.MonumentDetailResponse, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MonumentDetailResponse), args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, fields map[string]string) (*response.BookingResponse, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingDetailResponse), args.Error(1)
}

func (m *mockBookingService) GetUserBookings(ctx context.Context, email string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingDetailResponse], error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.BookingDetailResponse]), args.Error(1)
}

type mockTicketService struct{ mock.Mock }

func (m *mockTicketService) GetTicket(ctx context.Context, bookingID string) (*response.TicketResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *mockTicketService) RenderQR(ctx context.Context, bookingID string, size int) ([]byte, error) {
	args := m.Called(ctx, bookingID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockTicketService) RenderPDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type mockWizardService struct{ mock.Mock }

func (m *mockWizardService) Transition(ctx context.Context, monumentID string, req *request.WizardRequest) (*response.WizardResponse, error) {
	args := m.Called(ctx, monumentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.WizardResponse), args.Error(1)
}

type mockUploadService struct{ mock.Mock }

func (m *mockUploadService) UploadAuth(ctx context.Context) (*response.UploadAuthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UploadAuthResponse), args.Error(1)
}

func (m *mockUploadService) UploadImage(ctx context.Context, fileName string, file io.Reader) (*response.UploadResponse, error) {
	args := m.Called(ctx, fileName, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UploadResponse), args.Error(1)
}
