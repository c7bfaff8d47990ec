package fee

import "time"

// Status is the billing state of a resident for the current cycle.
type Status string

const (
	StatusPaid           Status = "PAID"
	StatusPartial        Status = "PARTIAL"
	StatusDue            Status = "DUE"
	StatusOverdue        Status = "OVERDUE"
	StatusOverduePartial Status = "OVERDUE_PARTIAL"
)

// Classify maps a resident's billing snapshot to its fee status.
//
// Branch order matters: a zero due wins over everything else, and overdue
// wins over partial. Both amount comparisons are strict, so a resident
// owing exactly one monthly fee while overdue is OVERDUE, not
// OVERDUE_PARTIAL. The date comparison is calendar-date strict: a next fee
// date equal to today is not overdue.
func Classify(dueAmount, monthlyFee int64, nextFeeDate *time.Time, today time.Time) Status {
	if dueAmount == 0 {
		return StatusPaid
	}

	overdue := nextFeeDate != nil && dateOf(*nextFeeDate).Before(dateOf(today))

	if overdue {
		if dueAmount < monthlyFee {
			return StatusOverduePartial
		}

		return StatusOverdue
	}

	if dueAmount < monthlyFee {
		return StatusPartial
	}

	return StatusDue
}

// DelayDays returns the whole days elapsed past the next fee date, zero
// when the date is unset, today, or in the future. Display-only: it never
// feeds back into Classify.
func DelayDays(nextFeeDate *time.Time, today time.Time) int {
	if nextFeeDate == nil {
		return 0
	}

	days := int(dateOf(today).Sub(dateOf(*nextFeeDate)).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// NextCycle advances a fee date by one billing cycle.
func NextCycle(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
