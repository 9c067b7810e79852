package dto

import (
	"time"

	"github.com/google/uuid"

	"intervuex/internal/domains/booking/model"
	"intervuex/shared"
	"intervuex/shared/constant"
	gDto "intervuex/shared/dto"
	gModel "intervuex/shared/model"
	"intervuex/shared/timezone"
)

type CreateBookingRequest struct {
	ProviderID    string `json:"provider_id"    validate:"required,max=64"`
	BookingDate   string `json:"booking_date"   validate:"required,dateymd"`
	StartTime     string `json:"start_time"     validate:"required,hhmm"`
	GrossAmount   int64  `json:"gross_amount"   validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=wallet gateway"`
	ExternalRef   string `json:"external_payment_ref" validate:"omitempty,max=100"`
}

// ToModel builds the booking record. Status and the financial split are
// assigned by the service, not the request.
func (c *CreateBookingRequest) ToModel(requesterID string, durationMinutes int) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.DateLayoutYMD, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	startTime, err := time.Parse(constant.TimeLayoutHHMM, c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RequesterID:   requesterID,
		ProviderID:    c.ProviderID,
		BookingDate:   bookingDate,
		StartTime:     startTime,
		EndTime:       startTime.Add(time.Duration(durationMinutes) * time.Minute),
		GrossAmount:   c.GrossAmount,
		PaymentMethod: c.PaymentMethod,
		ExternalRef:   c.ExternalRef,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  requesterID,
			ModifiedBy: requesterID,
		},
	}, nil
}

type ConfirmBookingRequest struct {
	ExternalRef string `json:"external_payment_ref" validate:"required,max=100"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	RequesterID    string `json:"requester_id"`
	ProviderID     string `json:"provider_id"`
	BookingDate    string `json:"booking_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	GrossAmount    int64  `json:"gross_amount"`
	PlatformFee    int64  `json:"platform_fee"`
	ProviderPayout int64  `json:"provider_payout"`
	PaymentMethod  string `json:"payment_method"`
	ExternalRef    string `json:"external_payment_ref,omitempty"`
	Status         string `json:"status"`
	CancelReason   string `json:"cancel_reason,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(mod model.Booking) {
	b.ID = mod.ID
	b.RequesterID = mod.RequesterID
	b.ProviderID = mod.ProviderID
	b.BookingDate = mod.BookingDate.Format(constant.DateLayoutYMD)
	b.StartTime = mod.StartTime.Format(constant.TimeLayoutHHMM)
	b.EndTime = mod.EndTime.Format(constant.TimeLayoutHHMM)
	b.GrossAmount = mod.GrossAmount
	b.PlatformFee = mod.PlatformFee
	b.ProviderPayout = mod.ProviderPayout
	b.PaymentMethod = mod.PaymentMethod
	b.ExternalRef = mod.ExternalRef
	b.Status = mod.Status
	b.CancelReason = mod.CancelReason
	b.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking lifecycle topic.
type BookingEvent struct {
	BookingID   string `json:"booking_id"`
	RequesterID string `json:"requester_id"`
	ProviderID  string `json:"provider_id"`
	Status      string `json:"status"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	OccurredAt  string `json:"occurred_at"`
}

func NewBookingEvent(mod model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:   mod.ID,
		RequesterID: mod.RequesterID,
		ProviderID:  mod.ProviderID,
		Status:      mod.Status,
		BookingDate: mod.BookingDate.Format(constant.DateLayoutYMD),
		StartTime:   mod.StartTime.Format(constant.TimeLayoutHHMM),
		OccurredAt:  timezone.Now().Format(time.RFC3339),
	}
}
