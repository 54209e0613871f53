package model

import (
	"fmt"
	"time"
)

// Identity is the opaque chat identifier scoping request ownership.
type Identity string

// Urgency is the closed urgency classification of a request.
type Urgency string

const (
	UrgencyUrgent Urgency = "Dringend"
	UrgencyNormal Urgency = "Normal"
)

// Status values stored in the fulfillment column. Anything else non-empty
// means the request was ordered externally.
const (
	StatusPending   = ""
	StatusCancelled = "STORNIERT"
)

// Timestamp layouts used in ledger rows.
const (
	CreatedAtLayout   = "2006-01-02 15:04:05"
	FulfilledAtLayout = "2006-01-02 15:04"
)

// Request is one procurement request persisted as a ledger row.
type Request struct {
	Row           int // 1-indexed physical ledger position, header is row 1
	OrderNumber   string
	CreatedAt     time.Time
	CreatedAtRaw  string // cell content as stored, shown to users verbatim
	RequesterName string
	Identity      Identity
	Article       string
	Quantity      string
	Urgency       string
	CostCenter    string
	Status        string
	FulfilledAt   string
}

// Pending reports whether the request has not been ordered or cancelled yet.
func (r Request) Pending() bool { return r.Status == StatusPending }

// Cancelled reports whether the request was cancelled by its owner.
func (r Request) Cancelled() bool { return r.Status == StatusCancelled }

// FormatOrderNumber renders a sequential identifier as "#NNN",
// zero-padded to at least three digits.
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("#%03d", n)
}

// Draft holds the fields collected so far by the order conversation.
type Draft struct {
	Article      string
	Quantity     string
	Urgency      string
	CostCenter   string
	AttachmentID string
}
