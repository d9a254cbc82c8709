package entity

import "time"

// BorrowRecord is one loan of a book to a patron. ReturnDate is nil while
// the loan is still active. Title and Author are joined in by the store on
// read paths that need them.
type BorrowRecord struct {
	PatronID   string     `json:"patron_id"`
	BookID     int64      `json:"book_id"`
	Title      string     `json:"title,omitempty"`
	Author     string     `json:"author,omitempty"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}
