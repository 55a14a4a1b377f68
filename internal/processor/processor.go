package processor

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"tally/internal/audit"
	"tally/internal/identifier"
	"tally/internal/receipt"
	"tally/internal/score"
	"tally/internal/store"
	"tally/internal/utils"
)

// Summary is the compact view of an accepted receipt kept in the recent
// journal and reported by Stats.
type Summary struct {
	ID       string `json:"id"`
	Retailer string `json:"retailer"`
	Points   int64  `json:"points"`
}

// Stats describes the processing activity of this instance: the total
// number of accepted receipts and the most recent submissions.
type Stats struct {
	Submitted int64     `json:"submitted"`
	Recent    []Summary `json:"recent"`
}

// Processor orchestrates receipt acceptance: it scores a validated
// receipt, mints an identifier, records the result in the store and the
// audit trail, and serves later points lookups.
//
// Processor does not retain the receipts it scores; once stored, records
// are reachable only through their identifier.
type Processor struct {
	calculator *score.Calculator
	issuer     identifier.Issuer
	store      store.Store
	trail      audit.Trail
	recent     *utils.RingBuffer[Summary]
	submitted  atomic.Int64
}

// Submit accepts a validated receipt and returns its freshly issued
// identifier. Points are computed first — the identifier is only needed
// for storage. The error is non-nil only when the store backend fails.
func (p *Processor) Submit(r receipt.Receipt) (string, error) {
	points := p.calculator.Calculate(r)
	id := p.issuer.Issue()

	if err := p.store.Put(id, r, points); err != nil {
		return "", fmt.Errorf("store receipt: %w", err)
	}

	p.trail.Record(id, r, points)
	p.recent.Push(Summary{ID: id, Retailer: r.Retailer, Points: points})
	p.submitted.Add(1)

	slog.Info("Receipt processed", "id", id, "points", points)
	return id, nil
}

// Points returns the points awarded for the receipt stored under id.
// Returns *store.NotFoundError for an unknown identifier.
func (p *Processor) Points(id string) (int64, error) {
	return p.store.Points(id)
}

// Stats returns the submission counter and the recent journal contents,
// newest entries last.
func (p *Processor) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Recent:    p.recent.Snapshot(),
	}
}

// NewProcessor creates a processor with the given collaborators.
// recentLength caps the recent journal; values below 1 fall back to 1.
func NewProcessor(
	calculator *score.Calculator,
	issuer identifier.Issuer,
	st store.Store,
	trail audit.Trail,
	recentLength int,
) *Processor {
	if recentLength < 1 {
		recentLength = 1
	}
	return &Processor{
		calculator: calculator,
		issuer:     issuer,
		store:      st,
		trail:      trail,
		recent:     utils.NewRingBuffer[Summary](recentLength),
	}
}
