package models

import "github.com/shopspring/decimal"

type PlaceOrderRequest struct {
	SeqID    int64           `json:"seq_id,omitempty"`
	Side     string          `json:"side" validate:"required,side"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity *int64          `json:"quantity" validate:"required,gte=0"`
}

// Qty unwraps the quantity pointer. The pointer exists so that an explicit
// zero (a valid no-op submission) can be told apart from a missing field.
func (r *PlaceOrderRequest) Qty() int64 {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}
