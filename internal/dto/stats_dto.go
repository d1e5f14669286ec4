package dto

// StatsEntry aggregates invoices sharing one status.
type StatsEntry struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// StatsResponse maps status -> aggregate. Statuses with no invoices are
// absent from the map rather than reported as zero.
type StatsResponse map[string]StatsEntry
