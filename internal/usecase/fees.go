package usecase

import (
	"context"
	"math"
	"time"

	"libraryapi/internal/entity"
)

const (
	// Overdue days are billed at 0.50 for the first week and 1.00 per day
	// after that, capped per book.
	feeFirstWeekPerDay = 0.50
	feeAfterWeekPerDay = 1.00
	feeFirstWeekDays   = 7
	feeMaxPerBook      = 15.00
)

// LateFee quotes the current late fee for one of the patron's loans.
// Read-only; a patron who is not borrowing the book gets a zero quote with
// status "Not being borrowed" rather than an error.
func (l *Library) LateFee(ctx context.Context, patronID string, bookID int64) (entity.FeeQuote, error) {
	loans, err := l.repo.ActiveBorrows(ctx, patronID)
	if err != nil {
		return entity.FeeQuote{}, err
	}

	for i := range loans {
		if loans[i].BookID == bookID {
			return l.quoteFor(&loans[i]), nil
		}
	}
	return entity.FeeQuote{Status: entity.FeeStatusNotBorrowed}, nil
}

func (l *Library) quoteFor(loan *entity.BorrowRecord) entity.FeeQuote {
	days := daysOverdue(loan.DueDate, l.clock.Now())
	if days <= 0 {
		return entity.FeeQuote{Status: entity.FeeStatusOnTime}
	}

	firstWeek := min(days, feeFirstWeekDays)
	remaining := max(days-feeFirstWeekDays, 0)
	fee := float64(firstWeek)*feeFirstWeekPerDay + float64(remaining)*feeAfterWeekPerDay
	if fee > feeMaxPerBook {
		fee = feeMaxPerBook
	}

	return entity.FeeQuote{
		FeeAmount:   round2(fee),
		DaysOverdue: days,
		Status:      entity.FeeStatusOverdue,
	}
}

// daysOverdue compares calendar dates, not instants: a book due yesterday
// at 23:00 is one day overdue at 01:00 today.
func daysOverdue(due, now time.Time) int {
	days := int(dateOnly(now).Sub(dateOnly(due)).Hours() / 24)
	return max(days, 0)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
