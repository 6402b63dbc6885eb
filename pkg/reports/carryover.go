package reports

// CarryoverCutoverYear is the first annual-report year that inherits unmet
// balances from its prior calendar year. Dues history before it is
// incomplete, so earlier years never carry over.
const CarryoverCutoverYear = 2026

// Carryover returns the unmet balance that rolls into the next period.
// Overpayment never produces a negative carryover.
func Carryover(expected, paid int64) int64 {
	if d := expected - paid; d > 0 {
		return d
	}
	return 0
}
