package model

import "time"

const (
	TableName  = "wallet_ledger_entries"
	EntityName = "ledger_entry"

	FieldID               = "id"
	FieldAccountID        = "account_id"
	FieldEntryType        = "entry_type"
	FieldAmount           = "amount"
	FieldReason           = "reason"
	FieldRelatedBookingID = "related_booking_id"
	FieldCreatedAt        = "created_at"
)

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

const (
	ReasonBookingPayment = "booking_payment"
	ReasonProviderPayout = "provider_payout"
	ReasonPlatformFee    = "platform_fee"
	ReasonBookingRefund  = "booking_refund"
	ReasonPayoutReversal = "payout_reversal"
	ReasonFeeReversal    = "fee_reversal"
)

// LedgerEntry is one append-only movement on a wallet account. Entries are
// never updated or deleted; corrections are compensating entries. An
// account's balance is always derived by summing its entries.
type LedgerEntry struct {
	ID               string    `db:"id"`
	AccountID        string    `db:"account_id"`
	Type             string    `db:"entry_type"`
	Amount           int64     `db:"amount"`
	Reason           string    `db:"reason"`
	RelatedBookingID string    `db:"related_booking_id"`
	CreatedAt        time.Time `db:"created_at"`
	CreatedBy        string    `db:"created_by"`
}
