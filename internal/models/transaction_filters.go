package models

import "time"

// TransactionFilters contains filtering options for ledger queries.
// Nil/zero fields are ignored.
type TransactionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      string
	Search    string
	Offset    int
	Limit     int
}
