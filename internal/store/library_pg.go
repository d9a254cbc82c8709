package store

// LibraryRepository implementation (Postgres)

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

type LibraryPG struct {
	db *pgxpool.Pool
}

var _ usecase.LibraryRepository = (*LibraryPG)(nil)

func NewLibraryPG(db *pgxpool.Pool) *LibraryPG {
	return &LibraryPG{db: db}
}

const bookColumns = "id, title, author, isbn, total_copies, available_copies"

func (r *LibraryPG) GetBookByID(ctx context.Context, id int64) (entity.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns)

	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, fmt.Errorf("get book by id: %w", err)
	}
	return b, nil
}

func (r *LibraryPG) GetBookByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE isbn = $1", bookColumns)

	var b entity.Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, fmt.Errorf("get book by isbn: %w", err)
	}
	return b, nil
}

func (r *LibraryPG) ListBooks(ctx context.Context) ([]entity.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY id", bookColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies); err != nil {
			return nil, fmt.Errorf("list books: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *LibraryPG) InsertBook(ctx context.Context, title, author, isbn string, totalCopies, availableCopies int) error {
	const query = `
		INSERT INTO books (title, author, isbn, total_copies, available_copies)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, query, title, author, isbn, totalCopies, availableCopies); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// UpdateBookAvailability applies delta as a single conditional statement so
// the count can never leave [0, total_copies], even under concurrent borrows.
func (r *LibraryPG) UpdateBookAvailability(ctx context.Context, id int64, delta int) error {
	const query = `
		UPDATE books
		SET available_copies = available_copies + $2
		WHERE id = $1
		  AND available_copies + $2 >= 0
		  AND available_copies + $2 <= total_copies`

	tag, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("update availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update availability: no copies to apply delta %d for book %d", delta, id)
	}
	return nil
}

func (r *LibraryPG) CountActiveBorrows(ctx context.Context, patronID string) (int, error) {
	const query = `
		SELECT COUNT(*) FROM borrow_records
		WHERE patron_id = $1 AND return_date IS NULL`

	var count int
	if err := r.db.QueryRow(ctx, query, patronID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active borrows: %w", err)
	}
	return count, nil
}

func (r *LibraryPG) ActiveBorrows(ctx context.Context, patronID string) ([]entity.BorrowRecord, error) {
	const query = `
		SELECT br.patron_id, br.book_id, b.title, b.author, br.borrow_date, br.due_date
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1 AND br.return_date IS NULL
		ORDER BY br.borrow_date`

	rows, err := r.db.Query(ctx, query, patronID)
	if err != nil {
		return nil, fmt.Errorf("active borrows: %w", err)
	}
	defer rows.Close()

	var loans []entity.BorrowRecord
	for rows.Next() {
		var rec entity.BorrowRecord
		if err := rows.Scan(&rec.PatronID, &rec.BookID, &rec.Title, &rec.Author, &rec.BorrowDate, &rec.DueDate); err != nil {
			return nil, fmt.Errorf("active borrows: %w", err)
		}
		loans = append(loans, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active borrows: %w", err)
	}
	return loans, nil
}

func (r *LibraryPG) InsertBorrowRecord(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) error {
	const query = `
		INSERT INTO borrow_records (patron_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, patronID, bookID, borrowDate, dueDate); err != nil {
		return fmt.Errorf("insert borrow record: %w", err)
	}
	return nil
}

func (r *LibraryPG) SetBorrowReturned(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error {
	const query = `
		UPDATE borrow_records
		SET return_date = $3
		WHERE patron_id = $1 AND book_id = $2 AND return_date IS NULL`

	tag, err := r.db.Exec(ctx, query, patronID, bookID, returnedAt)
	if err != nil {
		return fmt.Errorf("set borrow returned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set borrow returned: no active loan for patron %s, book %d", patronID, bookID)
	}
	return nil
}

func (r *LibraryPG) PatronHistory(ctx context.Context, patronID string) ([]entity.BorrowRecord, error) {
	const query = `
		SELECT br.patron_id, br.book_id, b.title, b.author, br.borrow_date, br.due_date, br.return_date
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1
		ORDER BY br.borrow_date DESC`

	rows, err := r.db.Query(ctx, query, patronID)
	if err != nil {
		return nil, fmt.Errorf("patron history: %w", err)
	}
	defer rows.Close()

	var records []entity.BorrowRecord
	for rows.Next() {
		var rec entity.BorrowRecord
		if err := rows.Scan(&rec.PatronID, &rec.BookID, &rec.Title, &rec.Author, &rec.BorrowDate, &rec.DueDate, &rec.ReturnDate); err != nil {
			return nil, fmt.Errorf("patron history: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("patron history: %w", err)
	}
	return records, nil
}
