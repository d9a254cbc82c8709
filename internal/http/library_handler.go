package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/usecase"
)

type LibraryHandler struct {
	library *usecase.Library
}

func NewLibraryHandler(library *usecase.Library) *LibraryHandler {
	return &LibraryHandler{library: library}
}

type AddBookRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=100"`
	ISBN        string `json:"isbn" validate:"required,isbn13"`
	TotalCopies int    `json:"total_copies" validate:"required,gt=0"`
}

type LoanRequest struct {
	PatronID string `json:"patron_id" validate:"required,patron_id"`
	BookID   int64  `json:"book_id" validate:"required,gt=0"`
}

// AddBook handles POST /books.
func (h *LibraryHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "validation_error", "Invalid request", toErrorDetails(errs))
		return
	}

	res := h.library.AddBook(r.Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	if !res.OK {
		JSONError(w, statusForCode(res.Code), res.Code, res.Message, nil)
		return
	}
	JSONSuccessCreated(w, res)
}

// Borrow handles POST /loans.
func (h *LibraryHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	h.loanAction(w, r, h.library.BorrowBook)
}

// Return handles POST /loans/return.
func (h *LibraryHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.loanAction(w, r, h.library.ReturnBook)
}

func (h *LibraryHandler) loanAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, patronID string, bookID int64) usecase.Result) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusBadRequest, "validation_error", "Invalid request", toErrorDetails(errs))
		return
	}

	res := action(r.Context(), req.PatronID, req.BookID)
	if !res.OK {
		JSONError(w, statusForCode(res.Code), res.Code, res.Message, nil)
		return
	}
	JSONSuccess(w, res, nil)
}

// LateFee handles GET /loans/fee?patron_id=&book_id=.
func (h *LibraryHandler) LateFee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	patronID := r.URL.Query().Get("patron_id")
	bookID, err := strconv.ParseInt(r.URL.Query().Get("book_id"), 10, 64)
	if err != nil || bookID <= 0 {
		JSONError(w, http.StatusBadRequest, "validation_error", "book_id must be a positive integer", nil)
		return
	}

	quote, err := h.library.LateFee(r.Context(), patronID, bookID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	JSONSuccess(w, quote, nil)
}

// Search handles GET /books/search?q=&type=.
func (h *LibraryHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	term := r.URL.Query().Get("q")
	searchType := r.URL.Query().Get("type")

	books, err := h.library.SearchBooks(r.Context(), term, searchType)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	JSONSuccess(w, books, map[string]interface{}{"count": len(books)})
}

// PatronStatus handles GET /patrons/{id}/status.
func (h *LibraryHandler) PatronStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// crude path param extraction with net/http's ServeMux
	// /patrons/{id}/status
	const prefix = "/patrons/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	patronID, ok := strings.CutSuffix(rest, "/status")
	if !ok || patronID == "" || strings.Contains(patronID, "/") {
		http.NotFound(w, r)
		return
	}

	report, err := h.library.PatronStatus(r.Context(), patronID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "internal_error", "server error", nil)
		return
	}
	JSONSuccess(w, report, nil)
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeInvalidInput:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeConflict, usecase.CodeUnavailable, usecase.CodeLimitExceeded, usecase.CodeNotBorrowed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toErrorDetails(errs []ValidationError) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, ErrorDetail{Field: e.Field, Message: e.Message})
	}
	return details
}
