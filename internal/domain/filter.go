package domain

// ProductFilter is a conjunction of optional predicates over products.
// Empty fields match everything.
type ProductFilter struct {
	Category string
	Status   ProductStatus
	Search   string
}

// TransactionFilter selects entries from the stock transaction log.
// Limit <= 0 means no limit.
type TransactionFilter struct {
	ProductID string
	Limit     int
}
