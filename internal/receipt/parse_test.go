package receipt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() ReceiptPayload {
	return ReceiptPayload{
		Retailer:     "M&M Corner Market",
		PurchaseDate: "2022-03-20",
		PurchaseTime: "14:33",
		Items: []ItemPayload{
			{ShortDescription: "Gatorade", Price: "2.25"},
		},
		Total: "2.25",
	}
}

// TestParse_Valid verifies that a well-formed payload produces a fully
// populated domain receipt with exact decimal money.
func TestParse_Valid(t *testing.T) {
	r, err := Parse(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "M&M Corner Market", r.Retailer)
	assert.Equal(t, 2022, r.PurchaseDate.Year())
	assert.Equal(t, 20, r.PurchaseDate.Day())
	assert.Equal(t, 14, r.PurchaseTime.Hour())
	assert.Equal(t, 33, r.PurchaseTime.Minute())
	require.Len(t, r.Items, 1)
	assert.Equal(t, "Gatorade", r.Items[0].ShortDescription)
	assert.True(t, r.Items[0].Price.Equal(decimal.RequireFromString("2.25")))
	assert.True(t, r.Total.Equal(decimal.RequireFromString("2.25")))
}

// TestParse_MissingFields verifies the first validation stage: absent
// required fields are rejected before any pattern or semantic check.
func TestParse_MissingFields(t *testing.T) {
	cases := map[string]func(*ReceiptPayload){
		"retailer":     func(p *ReceiptPayload) { p.Retailer = "" },
		"purchaseDate": func(p *ReceiptPayload) { p.PurchaseDate = "" },
		"purchaseTime": func(p *ReceiptPayload) { p.PurchaseTime = "" },
		"total":        func(p *ReceiptPayload) { p.Total = "" },
		"items":        func(p *ReceiptPayload) { p.Items = nil },
		"empty items":  func(p *ReceiptPayload) { p.Items = []ItemPayload{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			payload := validPayload()
			mutate(&payload)

			_, err := Parse(payload)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

// TestParse_PatternViolations verifies the character class checks on the
// text fields.
func TestParse_PatternViolations(t *testing.T) {
	cases := map[string]struct {
		mutate func(*ReceiptPayload)
		field  string
	}{
		"retailer with punctuation": {
			mutate: func(p *ReceiptPayload) { p.Retailer = "Target!" },
			field:  "retailer",
		},
		"description with comma": {
			mutate: func(p *ReceiptPayload) { p.Items[0].ShortDescription = "Chips, salted" },
			field:  "items[0].shortDescription",
		},
		"price with one fractional digit": {
			mutate: func(p *ReceiptPayload) { p.Items[0].Price = "2.5" },
			field:  "items[0].price",
		},
		"price without fraction": {
			mutate: func(p *ReceiptPayload) { p.Items[0].Price = "2" },
			field:  "items[0].price",
		},
		"negative total": {
			mutate: func(p *ReceiptPayload) { p.Total = "-2.25" },
			field:  "total",
		},
		"total with currency sign": {
			mutate: func(p *ReceiptPayload) { p.Total = "$2.25" },
			field:  "total",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			payload := validPayload()
			c.mutate(&payload)

			_, err := Parse(payload)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, c.field, ve.Field)
		})
	}
}

// TestParse_SemanticViolations verifies the second validation stage:
// values that pass the pattern checks but are not real dates or times.
func TestParse_SemanticViolations(t *testing.T) {
	cases := map[string]struct {
		mutate func(*ReceiptPayload)
		field  string
	}{
		"impossible calendar date": {
			mutate: func(p *ReceiptPayload) { p.PurchaseDate = "2022-02-30" },
			field:  "purchaseDate",
		},
		"malformed date": {
			mutate: func(p *ReceiptPayload) { p.PurchaseDate = "20-03-2022" },
			field:  "purchaseDate",
		},
		"impossible time": {
			mutate: func(p *ReceiptPayload) { p.PurchaseTime = "25:00" },
			field:  "purchaseTime",
		},
		"twelve hour time": {
			mutate: func(p *ReceiptPayload) { p.PurchaseTime = "2:33 PM" },
			field:  "purchaseTime",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			payload := validPayload()
			c.mutate(&payload)

			_, err := Parse(payload)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, c.field, ve.Field)
		})
	}
}

// TestParse_WhitespaceDescription verifies that a whitespace-only
// description passes the character class and reaches the engine, which
// handles it as a zero-length description.
func TestParse_WhitespaceDescription(t *testing.T) {
	payload := validPayload()
	payload.Items[0].ShortDescription = "   "

	r, err := Parse(payload)
	require.NoError(t, err)
	assert.Equal(t, "   ", r.Items[0].ShortDescription)
}

// TestValidationError_Message verifies the error text format.
func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("total", "must match D+.DD")
	assert.Equal(t, "invalid receipt: total: must match D+.DD", err.Error())
}
