package domain

// ProductStatus is the cached stock state of a product.
type ProductStatus string

const (
	ProductStatusInStock      ProductStatus = "in-stock"
	ProductStatusLowStock     ProductStatus = "low-stock"
	ProductStatusOutOfStock   ProductStatus = "out-of-stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

func (s ProductStatus) String() string { return string(s) }

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusInStock, ProductStatusLowStock, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

// TransactionType is the cause of a stock change.
type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeReturn     TransactionType = "return"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeAdjustment, TransactionTypeReturn:
		return true
	}
	return false
}

// AlertType classifies an inventory alert.
type AlertType string

const (
	AlertTypeLowStock   AlertType = "low-stock"
	AlertTypeOutOfStock AlertType = "out-of-stock"
	AlertTypeOverstock  AlertType = "overstock"
	AlertTypeExpiring   AlertType = "expiring"
)

func (t AlertType) String() string { return string(t) }

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeLowStock, AlertTypeOutOfStock, AlertTypeOverstock, AlertTypeExpiring:
		return true
	}
	return false
}

// AlertSeverity ranks how urgent an alert is.
type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "high"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityLow    AlertSeverity = "low"
)

func (s AlertSeverity) String() string { return string(s) }

func (s AlertSeverity) IsValid() bool {
	switch s {
	case AlertSeverityHigh, AlertSeverityMedium, AlertSeverityLow:
		return true
	}
	return false
}

// SupplierStatus marks whether a supplier is currently used.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

func (s SupplierStatus) String() string { return string(s) }

func (s SupplierStatus) IsValid() bool {
	switch s {
	case SupplierStatusActive, SupplierStatusInactive:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleSupplier UserRole = "supplier"
	UserRoleViewer   UserRole = "viewer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleSupplier, UserRoleViewer:
		return true
	}
	return false
}

// Trend is the direction indicator shown next to a KPI.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

func (t Trend) String() string { return string(t) }
