package domain

import "time"

// StockTransaction is an immutable record of one stock change.
type StockTransaction struct {
	ID            string
	ProductID     string
	Type          TransactionType
	Quantity      int
	PreviousStock int
	NewStock      int
	Timestamp     time.Time
	UserID        string
	Notes         *string
}
