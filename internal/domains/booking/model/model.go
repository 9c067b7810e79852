package model

import (
	"time"

	"intervuex/shared/model"
)

const (
	TableName  = "interview_bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRequesterID    = "requester_id"
	FieldProviderID     = "provider_id"
	FieldBookingDate    = "booking_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldGrossAmount    = "gross_amount"
	FieldPlatformFee    = "platform_fee"
	FieldProviderPayout = "provider_payout"
	FieldPaymentMethod  = "payment_method"
	FieldExternalRef    = "external_payment_ref"
	FieldStatus         = "status"
	FieldCancelReason   = "cancel_reason"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentMethodWallet  = "wallet"
	PaymentMethodGateway = "gateway"
)

// Booking is the durable transactional record of one interview session. Its
// scheduling fields are copied from the chosen slot at creation time and are
// never recomputed, even if the provider's rules change afterwards. Bookings
// are never deleted; cancellation is a status.
type Booking struct {
	ID             string    `db:"id"`
	RequesterID    string    `db:"requester_id"`
	ProviderID     string    `db:"provider_id"`
	BookingDate    time.Time `db:"booking_date"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	GrossAmount    int64     `db:"gross_amount"`
	PlatformFee    int64     `db:"platform_fee"`
	ProviderPayout int64     `db:"provider_payout"`
	PaymentMethod  string    `db:"payment_method"`
	ExternalRef    string    `db:"external_payment_ref"`
	Status         string    `db:"status"`
	CancelReason   string    `db:"cancel_reason"`
	model.Metadata
}

// ActiveStatuses are the statuses that hold a slot. A cancelled booking
// releases its slot.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusCompleted}
}
