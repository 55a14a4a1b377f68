package receipt

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Character classes and formats the wire fields must match. These mirror
// the public API contract, so clients of other implementations interoperate.
var (
	retailerPattern = regexp.MustCompile(`^[\w\s\-&]+$`)
	descPattern     = regexp.MustCompile(`^[\w\s\-]+$`)
	pricePattern    = regexp.MustCompile(`^\d+\.\d{2}$`)
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var validate = validator.New()

// ValidationError describes why a payload was rejected. Field names the
// offending wire field, Reason is a short human-readable explanation.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns a textual description of the validation failure.
func (ve *ValidationError) Error() string {
	return "invalid receipt: " + ve.Field + ": " + ve.Reason
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Parse turns a wire payload into a validated Receipt.
//
// Validation runs in two distinct stages:
//  1. Syntactic — required fields, non-empty item list, and the character
//     class patterns of the text fields.
//  2. Semantic — the date must be a real calendar date, the time a real
//     24-hour wall-clock time, and the monetary strings exact decimals.
//
// Any failure is reported as a *ValidationError; the first violation wins.
func Parse(payload ReceiptPayload) (Receipt, error) {
	if err := checkSyntax(payload); err != nil {
		return Receipt{}, err
	}

	purchaseDate, err := time.Parse(dateLayout, payload.PurchaseDate)
	if err != nil {
		return Receipt{}, NewValidationError("purchaseDate", "not a valid calendar date")
	}

	purchaseTime, err := time.Parse(timeLayout, payload.PurchaseTime)
	if err != nil {
		return Receipt{}, NewValidationError("purchaseTime", "not a valid 24-hour time")
	}

	total, err := decimal.NewFromString(payload.Total)
	if err != nil {
		return Receipt{}, NewValidationError("total", "not a valid amount")
	}

	items := make([]Item, 0, len(payload.Items))
	for i, ip := range payload.Items {
		price, err := decimal.NewFromString(ip.Price)
		if err != nil {
			return Receipt{}, NewValidationError(fmt.Sprintf("items[%d].price", i), "not a valid amount")
		}
		items = append(items, Item{
			ShortDescription: ip.ShortDescription,
			Price:            price,
		})
	}

	return Receipt{
		Retailer:     payload.Retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		Total:        total,
	}, nil
}

// checkSyntax performs the first validation stage: struct-level presence
// checks followed by the pattern checks on every text field.
func checkSyntax(payload ReceiptPayload) error {
	if err := validate.Struct(payload); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return NewValidationError(errs[0].Field(), "missing or empty")
		}
		return NewValidationError("receipt", "missing or empty fields")
	}

	if !retailerPattern.MatchString(payload.Retailer) {
		return NewValidationError("retailer", "contains disallowed characters")
	}
	if !pricePattern.MatchString(payload.Total) {
		return NewValidationError("total", "must match D+.DD")
	}
	for i, item := range payload.Items {
		if !descPattern.MatchString(item.ShortDescription) {
			return NewValidationError(fmt.Sprintf("items[%d].shortDescription", i), "contains disallowed characters")
		}
		if !pricePattern.MatchString(item.Price) {
			return NewValidationError(fmt.Sprintf("items[%d].price", i), "must match D+.DD")
		}
	}

	return nil
}
