package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"libraryapi/internal/entity"
)

func TestPatronStatus_InvalidPatronIDYieldsEmptyReport(t *testing.T) {
	lib, _ := newLibrary(t)

	report, err := lib.PatronStatus(context.Background(), "12ab56")

	assert.NoError(t, err)
	assert.Equal(t, "12ab56", report.PatronID)
	assert.Equal(t, 0, report.BorrowCount)
	assert.Empty(t, report.BorrowedBooks)
	assert.Empty(t, report.BorrowingHistory)
	assert.Equal(t, 0.00, report.TotalLateFee)
}

func TestPatronStatus_ActiveLoansAndFees(t *testing.T) {
	lib, repo := newLibrary(t)
	ctx := context.Background()

	onTimeDue := testNow.AddDate(0, 0, 4)
	overdueDue := testNow.AddDate(0, 0, -10)

	repo.EXPECT().ActiveBorrows(ctx, "123456").Return([]entity.BorrowRecord{
		{PatronID: "123456", BookID: 1, Title: "Dune", Author: "Frank Herbert",
			BorrowDate: onTimeDue.AddDate(0, 0, -14), DueDate: onTimeDue},
		{PatronID: "123456", BookID: 2, Title: "Neuromancer", Author: "William Gibson",
			BorrowDate: overdueDue.AddDate(0, 0, -14), DueDate: overdueDue},
	}, nil)
	repo.EXPECT().PatronHistory(ctx, "123456").Return(nil, nil)

	report, err := lib.PatronStatus(ctx, "123456")

	assert.NoError(t, err)
	assert.Equal(t, 2, report.BorrowCount)
	assert.Len(t, report.BorrowedBooks, 2)

	assert.Equal(t, entity.FeeStatusOnTime, report.BorrowedBooks[0].Status)
	assert.Equal(t, 0.00, report.BorrowedBooks[0].LateFee)

	assert.Equal(t, entity.FeeStatusOverdue, report.BorrowedBooks[1].Status)
	assert.Equal(t, 10, report.BorrowedBooks[1].DaysOverdue)
	assert.Equal(t, 6.50, report.BorrowedBooks[1].LateFee)

	assert.Equal(t, 6.50, report.TotalLateFee)
}

func TestPatronStatus_HistoryWithoutActiveLoans(t *testing.T) {
	lib, repo := newLibrary(t)
	ctx := context.Background()

	returned := time.Date(2026, time.February, 1, 9, 30, 0, 0, time.UTC)
	repo.EXPECT().ActiveBorrows(ctx, "123456").Return(nil, nil)
	repo.EXPECT().PatronHistory(ctx, "123456").Return([]entity.BorrowRecord{
		{PatronID: "123456", BookID: 3, Title: "Dune", Author: "Frank Herbert",
			BorrowDate: returned.AddDate(0, 0, -12), DueDate: returned.AddDate(0, 0, 2),
			ReturnDate: &returned},
	}, nil)

	report, err := lib.PatronStatus(ctx, "123456")

	assert.NoError(t, err)
	assert.Equal(t, 0, report.BorrowCount)
	assert.Empty(t, report.BorrowedBooks)
	assert.Equal(t, 0.00, report.TotalLateFee)
	assert.Len(t, report.BorrowingHistory, 1)
	assert.Equal(t, "2026-02-01 09:30:00", report.BorrowingHistory[0].ReturnDate)
}

func TestPatronStatus_OpenLoanInHistoryGetsSentinel(t *testing.T) {
	lib, repo := newLibrary(t)
	ctx := context.Background()

	due := testNow.AddDate(0, 0, 7)
	active := entity.BorrowRecord{
		PatronID: "123456", BookID: 1, Title: "Dune", Author: "Frank Herbert",
		BorrowDate: due.AddDate(0, 0, -14), DueDate: due,
	}
	repo.EXPECT().ActiveBorrows(ctx, "123456").Return([]entity.BorrowRecord{active}, nil)
	repo.EXPECT().PatronHistory(ctx, "123456").Return([]entity.BorrowRecord{active}, nil)

	report, err := lib.PatronStatus(ctx, "123456")

	assert.NoError(t, err)
	assert.Len(t, report.BorrowingHistory, 1)
	assert.Equal(t, entity.HistoryNotReturned, report.BorrowingHistory[0].ReturnDate)
}
