package usecase

import (
	"context"
	"errors"
	"time"

	"libraryapi/internal/entity"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// LibraryRepository is the contract the circulation rules run against.
// Implementations must keep the availability update atomic: the new
// available_copies value has to stay within [0, total_copies] or the
// update fails, so two racing borrows cannot both take the last copy.
type LibraryRepository interface {
	GetBookByID(ctx context.Context, id int64) (entity.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (entity.Book, error)
	ListBooks(ctx context.Context) ([]entity.Book, error)
	InsertBook(ctx context.Context, title, author, isbn string, totalCopies, availableCopies int) error
	UpdateBookAvailability(ctx context.Context, id int64, delta int) error

	CountActiveBorrows(ctx context.Context, patronID string) (int, error)
	// ActiveBorrows returns the patron's unreturned loans, joined with
	// book title and author, in borrow-date order.
	ActiveBorrows(ctx context.Context, patronID string) ([]entity.BorrowRecord, error)
	InsertBorrowRecord(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) error
	SetBorrowReturned(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error
	// PatronHistory returns all of the patron's loans, returned or not,
	// joined with book title and author, newest borrow first.
	PatronHistory(ctx context.Context, patronID string) ([]entity.BorrowRecord, error)
}
