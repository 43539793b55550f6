package catalog

import (
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
)

// The patch functions never modify their input; each returns a new slice.

// Append adds b at the end of the list.
func Append(books []model.Book, b model.Book) []model.Book {
	out := make([]model.Book, 0, len(books)+1)
	out = append(out, books...)
	return append(out, b)
}

// ReplaceByISBN swaps every entry whose ISBN equals isbn for b.
func ReplaceByISBN(books []model.Book, isbn string, b model.Book) []model.Book {
	out := make([]model.Book, len(books))
	for i, cur := range books {
		if isbn != "" && cur.ISBN == isbn {
			out[i] = b
			continue
		}
		out[i] = cur
	}
	return out
}

// PatchByISBN applies patch to every entry whose ISBN equals isbn.
func PatchByISBN(books []model.Book, isbn string, patch model.BookPatch) []model.Book {
	out := make([]model.Book, len(books))
	for i, cur := range books {
		if isbn != "" && cur.ISBN == isbn {
			out[i] = patch.ApplyTo(cur)
			continue
		}
		out[i] = cur
	}
	return out
}

// RemoveByISBN drops exactly the entries whose ISBN equals isbn. Record ids
// are ignored: they are not stable across fetches.
func RemoveByISBN(books []model.Book, isbn string) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, cur := range books {
		if isbn != "" && cur.ISBN == isbn {
			continue
		}
		out = append(out, cur)
	}
	return out
}

// AdjustAvailable adds delta to the available count of the entries matching
// target. Entries are matched on record id; only when no entry carries the
// target's record id are they matched on ISBN. Counts are not clamped.
func AdjustAvailable(books []model.Book, target model.Book, delta int) []model.Book {
	match := func(b model.Book) bool { return target.ID != "" && b.ID == target.ID }
	if !containsFunc(books, match) {
		match = func(b model.Book) bool { return target.ISBN != "" && b.ISBN == target.ISBN }
	}
	out := make([]model.Book, len(books))
	for i, cur := range books {
		if match(cur) {
			cur.AvailableBooks += delta
		}
		out[i] = cur
	}
	return out
}

func containsFunc(books []model.Book, f func(model.Book) bool) bool {
	for _, b := range books {
		if f(b) {
			return true
		}
	}
	return false
}

// EditForm seeds an edit form from a listed book.
func EditForm(b model.Book) model.BookPatch {
	return model.BookPatch{
		Title:          b.Title,
		Author:         b.Author,
		Quantity:       b.Quantity,
		AvailableBooks: b.AvailableBooks,
	}
}

// Find returns the first entry matching ref by record id, then by ISBN.
func Find(books []model.Book, ref string) (model.Book, bool) {
	if ref == "" {
		return model.Book{}, false
	}
	for _, b := range books {
		if b.ID == ref {
			return b, true
		}
	}
	for _, b := range books {
		if b.ISBN == ref {
			return b, true
		}
	}
	return model.Book{}, false
}
