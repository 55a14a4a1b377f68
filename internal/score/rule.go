package score

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"tally/internal/receipt"
)

// ReceiptRule computes a points contribution from a whole receipt.
// Rules are independent: each reads only the receipt and returns a
// non-negative contribution, and no rule depends on another's result.
type ReceiptRule func(r receipt.Receipt) int64

// ItemRule computes a points contribution from a single line item.
type ItemRule func(it receipt.Item) int64

var (
	quarter = decimal.New(25, -2) // 0.25
	fifth   = decimal.New(2, -1)  // 0.2
)

// retailerAlphanumericRule awards 1 point per letter or digit in the
// retailer name. Whitespace, hyphens and ampersands do not count.
func retailerAlphanumericRule(r receipt.Receipt) int64 {
	var points int64
	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}
	return points
}

// roundDollarRule awards 50 points when the total has no cents.
func roundDollarRule(r receipt.Receipt) int64 {
	if r.Total.IsInteger() {
		return 50
	}
	return 0
}

// quarterMultipleRule awards 25 points when the total is an exact
// multiple of 0.25. Exactness holds because totals are decimals.
func quarterMultipleRule(r receipt.Receipt) int64 {
	if r.Total.Mod(quarter).IsZero() {
		return 25
	}
	return 0
}

// itemPairRule awards 5 points for every two items on the receipt.
func itemPairRule(r receipt.Receipt) int64 {
	return int64(len(r.Items)/2) * 5
}

// oddPurchaseDayRule awards 6 points when the day of the month is odd.
func oddPurchaseDayRule(r receipt.Receipt) int64 {
	if r.PurchaseDate.Day()%2 == 1 {
		return 6
	}
	return 0
}

// afternoonWindowRule awards 10 points when the purchase time falls within
// the closed interval [14:00, 16:00]. Both endpoints award the bonus.
func afternoonWindowRule(r receipt.Receipt) int64 {
	minutes := r.PurchaseTime.Hour()*60 + r.PurchaseTime.Minute()
	if minutes >= 14*60 && minutes <= 16*60 {
		return 10
	}
	return 0
}

// descriptionLengthRule awards ceil(price * 0.2) points when the trimmed
// description length is a non-zero multiple of 3. A description that trims
// to nothing earns no points.
func descriptionLengthRule(it receipt.Item) int64 {
	trimmed := strings.TrimSpace(it.ShortDescription)
	if len(trimmed) == 0 || len(trimmed)%3 != 0 {
		return 0
	}
	return it.Price.Mul(fifth).Ceil().IntPart()
}
