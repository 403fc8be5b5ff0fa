// Package domain defines the wire-level models exchanged with the upstream
// messages/reports service and returned by the usage API. All entities are
// built fresh per request, never mutated after construction, and discarded
// once the response has been written. There is no persistence layer.
package domain

// Message is a single Copilot message for the current billing period, as
// delivered by the upstream messages endpoint.
//
// Fields:
//   - ID: numeric message identifier.
//   - Timestamp: opaque timestamp string; passed through to the usage record
//     unmodified (no parsing, no normalization).
//   - Text: raw message text the credit calculation runs on.
//   - ReportID: optional reference to an externally priced report.
//
// ID, Timestamp and Text are required by the usage resolver; they are
// pointers so that a field missing from the upstream JSON can be told apart
// from a present-but-zero value and reported by name.
type Message struct {
	ID        *int64  `json:"id"`
	Timestamp *string `json:"timestamp"`
	Text      *string `json:"text"`
	ReportID  *string `json:"report_id,omitempty"`
}

// Report is an externally authoritative cost override for a message. When a
// message references a report that exists, the report's CreditCost is billed
// verbatim, with no local calculation and no re-rounding.
type Report struct {
	Name       string  `json:"name"`
	CreditCost float64 `json:"credit_cost"`
}

// UsageRecord is the per-message output of the usage computation: identity,
// pass-through timestamp, and the resolved credit cost. ReportName is set
// only when the cost came from a successfully resolved report.
type UsageRecord struct {
	MessageID   int64   `json:"message_id"`
	Timestamp   string  `json:"timestamp"`
	CreditsUsed float64 `json:"credits_used"`
	ReportName  string  `json:"report_name,omitempty"`
}
