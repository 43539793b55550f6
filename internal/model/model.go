package model

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
)

type Book struct {
	ID             string `json:"_id,omitempty"`
	ISBN           string `json:"isbn,omitempty"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Quantity       int    `json:"quantity"`
	AvailableBooks int    `json:"availableBooks"`
}

// UnmarshalJSON accepts every field alias the catalog API has used:
// _id/id/bookId, isbn/ISBN, quantity/total, availableBooks/available.
func (b *Book) UnmarshalJSON(data []byte) error {
	o, err := decodeObject(data)
	if err != nil {
		return err
	}
	*b = bookFromObject(o)
	return nil
}

func bookFromObject(o object) Book {
	return Book{
		ID:             o.str("_id", "id", "bookId"),
		ISBN:           o.str("isbn", "ISBN"),
		Title:          o.str("title"),
		Author:         o.str("author"),
		Quantity:       o.num("quantity", "total"),
		AvailableBooks: o.num("availableBooks", "available"),
	}
}

// Identified reports whether the record carries anything a list can be matched on.
func (b Book) Identified() bool {
	return b.ID != "" || b.ISBN != ""
}

type BookDraft struct {
	Title          string `json:"title" validate:"required"`
	ISBN           string `json:"isbn" validate:"required"`
	Author         string `json:"author" validate:"required"`
	Quantity       int    `json:"quantity"`
	AvailableBooks int    `json:"availableBooks"`
}

func (d BookDraft) Book() Book {
	return Book{
		ISBN:           d.ISBN,
		Title:          d.Title,
		Author:         d.Author,
		Quantity:       d.Quantity,
		AvailableBooks: d.AvailableBooks,
	}
}

// BookPatch is the PUT /api/books/{isbn} body; every field is always sent.
type BookPatch struct {
	Title          string `json:"title" validate:"required"`
	Author         string `json:"author" validate:"required"`
	Quantity       int    `json:"quantity"`
	AvailableBooks int    `json:"availableBooks"`
}

func (p BookPatch) ApplyTo(b Book) Book {
	b.Title = p.Title
	b.Author = p.Author
	b.Quantity = p.Quantity
	b.AvailableBooks = p.AvailableBooks
	return b
}

// DecodeBooks reads either a bare array or a {"books": [...]} envelope.
func DecodeBooks(data []byte) ([]Book, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Book{}, nil
	}
	if data[0] == '[' {
		var books []Book
		if err := JSON.Unmarshal(data, &books); err != nil {
			return nil, errors.Wrap(err, "decode books")
		}
		return books, nil
	}
	var env struct {
		Books []Book `json:"books"`
	}
	if err := JSON.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decode books envelope")
	}
	if env.Books == nil {
		env.Books = []Book{}
	}
	return env.Books, nil
}

// DecodeBookEcho extracts the book a mutating endpoint echoed back, from
// {"book": {...}} or a bare book. ok is false when the body carries no book.
func DecodeBookEcho(data []byte) (Book, bool) {
	o, err := decodeObject(bytes.TrimSpace(data))
	if err != nil || len(o) == 0 {
		return Book{}, false
	}
	if nested, isObj := o["book"].(map[string]any); isObj {
		o = nested
	}
	b := bookFromObject(o)
	if !b.Identified() && b.Title == "" {
		return Book{}, false
	}
	return b, true
}

// BookRef is the loan's reference to a book: either a bare id or an
// embedded book object.
type BookRef struct {
	ID       string
	ISBN     string
	Embedded bool
}

func (r *BookRef) UnmarshalJSON(data []byte) error {
	var v any
	if err := JSON.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = BookRef{}
	if m, isObj := v.(map[string]any); isObj {
		o := object(m)
		r.Embedded = true
		r.ID = o.str("_id", "id")
		r.ISBN = o.str("isbn", "ISBN")
		return nil
	}
	r.ID = IDString(v)
	return nil
}

func (r BookRef) MarshalJSON() ([]byte, error) {
	if !r.Embedded {
		return JSON.Marshal(r.ID)
	}
	return JSON.Marshal(map[string]string{"_id": r.ID, "isbn": r.ISBN})
}

type Loan struct {
	ID         string     `json:"_id,omitempty"`
	Book       BookRef    `json:"bookId"`
	BorrowDate *time.Time `json:"borrowDate,omitempty"`
	ReturnDate *time.Time `json:"returnDate"`
	// Returned is true when the payload carried a non-null returnDate,
	// even one that could not be parsed as a timestamp.
	Returned bool `json:"-"`
}

func (l *Loan) UnmarshalJSON(data []byte) error {
	o, err := decodeObject(data)
	if err != nil {
		return err
	}
	*l = Loan{ID: o.str("_id", "id")}
	if raw, ok := o["bookId"]; ok && raw != nil {
		b, err := JSON.Marshal(raw)
		if err != nil {
			return err
		}
		if err := JSON.Unmarshal(b, &l.Book); err != nil {
			return err
		}
	}
	l.BorrowDate = parseTime(o["borrowDate"])
	if v, ok := o["returnDate"]; ok && v != nil {
		l.Returned = true
		l.ReturnDate = parseTime(v)
	}
	return nil
}

func (l Loan) Active() bool {
	return !l.Returned
}

func parseTime(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

type HistoryResponse struct {
	Borrows []Loan `json:"borrows"`
}

type BorrowRequest struct {
	BookID string `json:"bookId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
