package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// PatronStatus assembles a patron's active loans with live fee quotes and
// their full borrowing history. A malformed patron ID yields an empty
// report, not an error.
func (l *Library) PatronStatus(ctx context.Context, patronID string) (entity.StatusReport, error) {
	report := entity.StatusReport{
		PatronID:         patronID,
		BorrowedBooks:    []entity.LoanDetail{},
		BorrowingHistory: []entity.HistoryEntry{},
	}
	if !validPatronID(patronID) {
		return report, nil
	}

	loans, err := l.repo.ActiveBorrows(ctx, patronID)
	if err != nil {
		return entity.StatusReport{}, err
	}

	total := 0.0
	for i := range loans {
		quote := l.quoteFor(&loans[i])
		report.BorrowedBooks = append(report.BorrowedBooks, entity.LoanDetail{
			BookID:      loans[i].BookID,
			Title:       loans[i].Title,
			Author:      loans[i].Author,
			BorrowDate:  loans[i].BorrowDate,
			DueDate:     loans[i].DueDate,
			DaysOverdue: quote.DaysOverdue,
			LateFee:     quote.FeeAmount,
			Status:      quote.Status,
		})
		total += quote.FeeAmount
	}
	report.BorrowCount = len(loans)
	report.TotalLateFee = round2(total)

	history, err := l.repo.PatronHistory(ctx, patronID)
	if err != nil {
		return entity.StatusReport{}, err
	}
	for _, rec := range history {
		returned := entity.HistoryNotReturned
		if rec.ReturnDate != nil {
			returned = rec.ReturnDate.Format("2006-01-02 15:04:05")
		}
		report.BorrowingHistory = append(report.BorrowingHistory, entity.HistoryEntry{
			BookID:     rec.BookID,
			Title:      rec.Title,
			Author:     rec.Author,
			BorrowDate: rec.BorrowDate,
			DueDate:    rec.DueDate,
			ReturnDate: returned,
		})
	}

	return report, nil
}
