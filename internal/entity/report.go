package entity

import "time"

const (
	FeeStatusOnTime      = "On time"
	FeeStatusOverdue     = "Overdue"
	FeeStatusNotBorrowed = "Not being borrowed"

	// HistoryNotReturned marks a history entry whose loan is still open.
	HistoryNotReturned = "Not yet returned"
)

// FeeQuote is computed on demand from a loan's due date; it is never stored.
type FeeQuote struct {
	FeeAmount   float64 `json:"fee_amount"`
	DaysOverdue int     `json:"days_overdue"`
	Status      string  `json:"status"`
}

type LoanDetail struct {
	BookID      int64     `json:"book_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	BorrowDate  time.Time `json:"borrow_date"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
	LateFee     float64   `json:"late_fee"`
	Status      string    `json:"status"`
}

type HistoryEntry struct {
	BookID     int64     `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	// ReturnDate is the formatted return timestamp, or HistoryNotReturned.
	ReturnDate string `json:"return_date"`
}

type StatusReport struct {
	PatronID         string         `json:"patron_id"`
	BorrowCount      int            `json:"borrow_count"`
	BorrowedBooks    []LoanDetail   `json:"borrowed_books"`
	BorrowingHistory []HistoryEntry `json:"borrowing_history"`
	TotalLateFee     float64        `json:"total_late_fee"`
}
