package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxActiveLoans is the number of books a patron may hold at once.
	// A borrow is rejected once the patron already has this many open loans.
	MaxActiveLoans = 5

	// LoanPeriodDays is how long a borrowed book is out before it is due.
	LoanPeriodDays = 14

	MaxTitleLen    = 200
	MaxAuthorLen   = 100
	ISBNLength     = 13
	PatronIDLength = 6
)

// Library implements the circulation business rules over a repository.
type Library struct {
	repo  LibraryRepository
	clock Clock
}

func NewLibraryUsecase(repo LibraryRepository) *Library {
	return &Library{repo: repo, clock: realClock{}}
}

// NewLibraryUsecaseWithClock is for tests that need a fixed time.
func NewLibraryUsecaseWithClock(repo LibraryRepository, clock Clock) *Library {
	return &Library{repo: repo, clock: clock}
}

// AddBook validates and inserts a new catalog entry. The first failed check
// wins; the stored book starts with all copies available.
func (l *Library) AddBook(ctx context.Context, title, author, isbn string, totalCopies int) Result {
	title = strings.TrimSpace(title)
	if title == "" {
		return failure(CodeInvalidInput, "Title is required.")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return failure(CodeInvalidInput, "Title must be less than 200 characters.")
	}

	author = strings.TrimSpace(author)
	if author == "" {
		return failure(CodeInvalidInput, "Author is required.")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLen {
		return failure(CodeInvalidInput, "Author must be less than 100 characters.")
	}

	if len(isbn) != ISBNLength {
		return failure(CodeInvalidInput, "ISBN must be exactly 13 digits.")
	}

	if totalCopies <= 0 {
		return failure(CodeInvalidInput, "Total copies must be a positive integer.")
	}

	_, err := l.repo.GetBookByISBN(ctx, isbn)
	switch {
	case err == nil:
		return failure(CodeConflict, "A book with this ISBN already exists.")
	case !errors.Is(err, ErrNotFound):
		return failure(CodeStorageError, "Database error occurred while adding the book.")
	}

	if err := l.repo.InsertBook(ctx, title, author, isbn, totalCopies, totalCopies); err != nil {
		return failure(CodeStorageError, "Database error occurred while adding the book.")
	}

	return success(fmt.Sprintf("Book %q has been successfully added to the catalog.", title))
}

// BorrowBook lends a book to a patron for LoanPeriodDays. There is no
// compensating rollback if the availability update fails after the record
// insert; the failure is reported and the caller decides what to do.
func (l *Library) BorrowBook(ctx context.Context, patronID string, bookID int64) Result {
	if !validPatronID(patronID) {
		return failure(CodeInvalidInput, "Invalid patron ID. Must be exactly 6 digits.")
	}

	book, err := l.repo.GetBookByID(ctx, bookID)
	if errors.Is(err, ErrNotFound) {
		return failure(CodeNotFound, "Book not found.")
	}
	if err != nil {
		return failure(CodeStorageError, "Database error occurred while looking up the book.")
	}

	if book.AvailableCopies <= 0 {
		return failure(CodeUnavailable, "This book is currently not available.")
	}

	active, err := l.repo.CountActiveBorrows(ctx, patronID)
	if err != nil {
		return failure(CodeStorageError, "Database error occurred while checking borrowed books.")
	}
	if active >= MaxActiveLoans {
		return failure(CodeLimitExceeded,
			fmt.Sprintf("You have reached the maximum borrowing limit of %d books.", MaxActiveLoans))
	}

	borrowDate := l.clock.Now()
	dueDate := borrowDate.AddDate(0, 0, LoanPeriodDays)

	if err := l.repo.InsertBorrowRecord(ctx, patronID, bookID, borrowDate, dueDate); err != nil {
		return failure(CodeStorageError, "Database error occurred while creating borrow record.")
	}
	if err := l.repo.UpdateBookAvailability(ctx, bookID, -1); err != nil {
		return failure(CodeStorageError, "Database error occurred while updating book availability.")
	}

	return success(fmt.Sprintf("Successfully borrowed %q. Due date: %s.",
		book.Title, dueDate.Format("2006-01-02")))
}

// ReturnBook closes a patron's loan and puts the copy back in circulation.
func (l *Library) ReturnBook(ctx context.Context, patronID string, bookID int64) Result {
	if !validPatronID(patronID) {
		return failure(CodeInvalidInput, "Invalid patron ID. Must be exactly 6 digits.")
	}

	if _, err := l.repo.GetBookByID(ctx, bookID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return failure(CodeNotFound, "Book not found.")
		}
		return failure(CodeStorageError, "Database error occurred while looking up the book.")
	}

	loans, err := l.repo.ActiveBorrows(ctx, patronID)
	if err != nil {
		return failure(CodeStorageError, "Database error occurred while checking borrowed books.")
	}
	borrowed := false
	for _, loan := range loans {
		if loan.BookID == bookID {
			borrowed = true
			break
		}
	}
	if !borrowed {
		return failure(CodeNotBorrowed, "This book is not currently being borrowed by you.")
	}

	if err := l.repo.SetBorrowReturned(ctx, patronID, bookID, l.clock.Now()); err != nil {
		return failure(CodeStorageError, "Error while updating return record.")
	}
	if err := l.repo.UpdateBookAvailability(ctx, bookID, 1); err != nil {
		return failure(CodeStorageError, "Error while updating book availability.")
	}

	return success("Successfully returned book.")
}

func validPatronID(patronID string) bool {
	if len(patronID) != PatronIDLength {
		return false
	}
	for _, r := range patronID {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
