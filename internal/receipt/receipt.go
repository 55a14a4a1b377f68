package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single purchased line on a receipt.
// Monetary values are exact decimals; floats are never used for money.
type Item struct {
	// ShortDescription — the short product description, e.g. "Mountain Dew 12PK".
	ShortDescription string
	// Price — the total price paid for this item, two-digit scale.
	Price decimal.Decimal
}

// Receipt is a validated purchase record. Values of this type are only
// produced by Parse and satisfy the invariants the scoring engine relies on:
// at least one item, pattern-conforming text fields, exact decimal money.
type Receipt struct {
	// Retailer — the name of the retailer or store the receipt is from.
	Retailer string
	// PurchaseDate — the calendar date of the purchase.
	PurchaseDate time.Time
	// PurchaseTime — the 24-hour wall-clock time of the purchase.
	// Only the hour and minute components are meaningful.
	PurchaseTime time.Time
	// Items — the purchased lines, always non-empty.
	Items []Item
	// Total — the purchase total, two-digit scale.
	Total decimal.Decimal
}

// ItemPayload is the wire representation of a receipt line as received
// from clients. Prices travel as strings to preserve exactness.
type ItemPayload struct {
	ShortDescription string `json:"shortDescription" validate:"required"`
	Price            string `json:"price" validate:"required"`
}

// ReceiptPayload is the wire representation of a receipt as received from
// clients. Parse turns it into a Receipt or reports a ValidationError.
type ReceiptPayload struct {
	Retailer     string        `json:"retailer" validate:"required"`
	PurchaseDate string        `json:"purchaseDate" validate:"required"`
	PurchaseTime string        `json:"purchaseTime" validate:"required"`
	Items        []ItemPayload `json:"items" validate:"required,min=1,dive"`
	Total        string        `json:"total" validate:"required"`
}
