package reports

// Annual report statuses.
const (
	StatusComplete = "Complete"
	StatusPartial  = "Partial"
	StatusUnpaid   = "Unpaid"
)

// Pitch report statuses (StatusComplete is shared).
const StatusIncomplete = "Incomplete"

// Payment-cadence statuses for the upcoming-payments report.
const (
	StatusUpToDate = "up_to_date"
	StatusDueSoon  = "due_soon"
	StatusOverdue  = "overdue"
)

func annualStatus(amountPaid, totalDue int64) string {
	switch {
	case amountPaid >= totalDue:
		return StatusComplete
	case amountPaid > 0:
		return StatusPartial
	default:
		return StatusUnpaid
	}
}

func pitchStatus(balance int64) string {
	if balance <= 0 {
		return StatusComplete
	}
	return StatusIncomplete
}
