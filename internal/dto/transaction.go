package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the payload for recording a ledger entry.
// Amount travels as a string so it parses exactly.
type CreateTransactionRequest struct {
	Amount   string    `json:"amount" validate:"required,money_amount"`
	Category string    `json:"category" validate:"required,spending_category"`
	Date     time.Time `json:"date" validate:"required"`
	Note     string    `json:"note" validate:"max=500"`
	Type     string    `json:"type" validate:"required,transaction_type"`
}

// UpdateTransactionRequest replaces the mutable fields of an entry
type UpdateTransactionRequest struct {
	Amount   string    `json:"amount" validate:"required,money_amount"`
	Category string    `json:"category" validate:"required,spending_category"`
	Date     time.Time `json:"date" validate:"required"`
	Note     string    `json:"note" validate:"max=500"`
	Type     string    `json:"type" validate:"required,transaction_type"`
}

// ListTransactionsQuery holds the query parameters of the transaction list
type ListTransactionsQuery struct {
	Period   string `query:"period" validate:"omitempty,time_period"`
	Category string `query:"category" validate:"omitempty,spending_category"`
	Type     string `query:"type" validate:"omitempty,transaction_type"`
	Search   string `query:"search" validate:"max=100"`
	Offset   int    `query:"offset" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=0,max=500"`
}

// TransactionResponse is one ledger entry as returned by the API
type TransactionResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyGroupResponse is one calendar day's entries with the day's net
type DailyGroupResponse struct {
	Day          string                `json:"day"`
	Net          string                `json:"net"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListTransactionsResponse is the grouped transaction list
type ListTransactionsResponse struct {
	Groups []DailyGroupResponse `json:"groups"`
	Count  int                  `json:"count"`
}
