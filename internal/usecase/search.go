package usecase

import (
	"context"
	"strings"

	"libraryapi/internal/entity"
)

// SearchBooks scans the catalog for a term. Title and author match on a
// case-insensitive substring, isbn on exact equality. Unknown search types
// fall back to title; an empty term returns nothing without touching the
// store. Results keep catalog order.
func (l *Library) SearchBooks(ctx context.Context, term, searchType string) ([]entity.Book, error) {
	results := []entity.Book{}
	if term == "" {
		return results, nil
	}

	searchType = strings.ToLower(searchType)
	switch searchType {
	case "title", "author", "isbn":
	default:
		searchType = "title"
	}

	needle := strings.ToLower(strings.TrimSpace(term))

	books, err := l.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range books {
		switch searchType {
		case "title":
			if strings.Contains(strings.ToLower(b.Title), needle) {
				results = append(results, b)
			}
		case "author":
			if strings.Contains(strings.ToLower(b.Author), needle) {
				results = append(results, b)
			}
		case "isbn":
			if strings.ToLower(b.ISBN) == needle {
				results = append(results, b)
			}
		}
	}
	return results, nil
}
