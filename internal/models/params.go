package models

// OrderListParams filters a remote order listing. Nil fields are left out of
// the outbound query string.
type OrderListParams struct {
	Page     *int
	PageSize *int
	Status   *string
	DateFrom *string
	DateTo   *string
}

// ProductListParams filters a remote product listing
type ProductListParams struct {
	Page       *int
	PageSize   *int
	CategoryID *string
	Search     *string
}

// CustomerListParams filters a remote customer listing
type CustomerListParams struct {
	Page     *int
	PageSize *int
	Search   *string
}

// Int returns a pointer to v
func Int(v int) *int { return &v }

// String returns a pointer to v
func String(v string) *string { return &v }
