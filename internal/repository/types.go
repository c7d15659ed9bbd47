package repository

import "time"

// ProductListFilter filters product list queries.
type ProductListFilter struct {
	Page         int
	PageSize     int
	Brand        string
	Search       string
	OnlyActive   bool
	WithVariants bool
}

// OrderListFilter filters order list queries.
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	OrderNo     string
	Phone       string
	AffiliateID uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AffiliateListFilter filters affiliate list queries.
type AffiliateListFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   string
	Active   *bool
}

// CommissionListFilter filters commission ledger queries.
type CommissionListFilter struct {
	Page        int
	PageSize    int
	AffiliateID uint
	OrderID     uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ParlourListFilter filters parlour list queries.
type ParlourListFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   string
	City     string
}
