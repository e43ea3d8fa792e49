package domain

// Supplier is a vendor record. Rating and delivery metrics are static.
type Supplier struct {
	ID             string
	Name           string
	ContactPerson  string
	Email          string
	Phone          string
	Address        string
	Rating         float64
	TotalOrders    int
	OnTimeDelivery float64
	Status         SupplierStatus
}

// IsActive reports whether the supplier is active.
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
