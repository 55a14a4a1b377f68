package score

import (
	"tally/internal/receipt"
)

// Calculator computes the reward points total for a receipt by applying a
// fixed catalog of independent rules and summing their contributions.
//
// The calculation is a pure function of the receipt: deterministic, free of
// side effects, and total — it never fails on a validated receipt. The rule
// order does not matter because contributions are simply summed.
type Calculator struct {
	// receiptRules — rules evaluated once per receipt.
	receiptRules []ReceiptRule
	// itemRules — rules evaluated once per line item.
	itemRules []ItemRule
}

// Calculate returns the points awarded for the given receipt: the sum of
// every receipt-level rule plus the sum of every item-level rule applied
// to each item.
func (c *Calculator) Calculate(r receipt.Receipt) int64 {
	var points int64
	for _, rule := range c.receiptRules {
		points += rule(r)
	}
	for _, item := range r.Items {
		for _, rule := range c.itemRules {
			points += rule(item)
		}
	}
	return points
}

// NewCalculator creates a calculator with the full rule catalog:
//   - 1 point per alphanumeric character in the retailer name
//   - 50 points for a round dollar total
//   - 25 points for a total that is a multiple of 0.25
//   - 5 points for every two items
//   - 6 points for an odd purchase day
//   - 10 points for a purchase between 14:00 and 16:00 inclusive
//   - ceil(price * 0.2) points per item whose trimmed description length
//     is a non-zero multiple of 3
func NewCalculator() *Calculator {
	return &Calculator{
		receiptRules: []ReceiptRule{
			retailerAlphanumericRule,
			roundDollarRule,
			quarterMultipleRule,
			itemPairRule,
			oddPurchaseDayRule,
			afternoonWindowRule,
		},
		itemRules: []ItemRule{
			descriptionLengthRule,
		},
	}
}
