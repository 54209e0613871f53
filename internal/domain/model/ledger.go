package model

import "time"

// Ledger column positions, 1-indexed as in the backing sheet.
const (
	ColOrderNumber = 1
	ColCreatedAt   = 2
	ColRequester   = 3
	ColIdentity    = 4
	ColArticle     = 5
	ColQuantity    = 6
	ColUrgency     = 7
	ColCostCenter  = 8
	ColStatus      = 9
	ColFulfilledAt = 10

	LedgerColumns = 10

	// HeaderRow occupies position 1; data rows start at FirstDataRow.
	HeaderRow    = 1
	FirstDataRow = 2
)

// LedgerHeader is the title row seeded into an empty ledger.
var LedgerHeader = []string{
	"BestellNr", "Timestamp", "Mitarbeiter", "ChatId", "Artikel",
	"Menge", "Dringlichkeit", "Kostenstelle", "Bestellt?", "Bestellt am",
}

// Row renders the request as a full ledger row in column order.
func (r Request) LedgerRow() []string {
	return []string{
		r.OrderNumber,
		r.CreatedAtRaw,
		r.RequesterName,
		string(r.Identity),
		r.Article,
		r.Quantity,
		r.Urgency,
		r.CostCenter,
		r.Status,
		r.FulfilledAt,
	}
}

// RequestFromRow parses a ledger row at the given physical position.
// Short rows are padded; an unparsable timestamp leaves CreatedAt zero
// while CreatedAtRaw keeps the original cell for display.
func RequestFromRow(pos int, row []string) Request {
	cells := make([]string, LedgerColumns)
	copy(cells, row)

	req := Request{
		Row:           pos,
		OrderNumber:   cells[ColOrderNumber-1],
		CreatedAtRaw:  cells[ColCreatedAt-1],
		RequesterName: cells[ColRequester-1],
		Identity:      Identity(cells[ColIdentity-1]),
		Article:       cells[ColArticle-1],
		Quantity:      cells[ColQuantity-1],
		Urgency:       cells[ColUrgency-1],
		CostCenter:    cells[ColCostCenter-1],
		Status:        cells[ColStatus-1],
		FulfilledAt:   cells[ColFulfilledAt-1],
	}

	if ts, err := time.ParseInLocation(CreatedAtLayout, req.CreatedAtRaw, time.Local); err == nil {
		req.CreatedAt = ts
	}

	return req
}
