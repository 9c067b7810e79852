package dto

import (
	"time"

	"intervuex/internal/domains/ledger/model"
	"intervuex/shared"
)

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

type TransactionResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Amount           int64     `json:"amount"`
	Reason           string    `json:"reason"`
	RelatedBookingID string    `json:"related_booking_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (t *TransactionResponse) FromModel(mod model.LedgerEntry) {
	t.ID = mod.ID
	t.Type = mod.Type
	t.Amount = mod.Amount
	t.Reason = mod.Reason
	t.RelatedBookingID = mod.RelatedBookingID
	t.CreatedAt = mod.CreatedAt
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (t *GetTransactionsResponse) FromModels(models []model.LedgerEntry, totalData, limit int) {
	t.TotalData = totalData
	t.TotalPage = shared.CalculateTotalPage(totalData, limit)

	t.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		t.Transactions[i].FromModel(mod)
	}
}
