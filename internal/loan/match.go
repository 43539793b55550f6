package loan

import (
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
)

// Identifier is the id sent to the borrow endpoint. The record id is the
// canonical identifier; the ISBN is only used for books listed without one.
func Identifier(b model.Book) (string, error) {
	switch {
	case b.ID != "":
		return b.ID, nil
	case b.ISBN != "":
		return b.ISBN, nil
	default:
		return "", errs.ErrMissingBookID
	}
}

// Active keeps the loans that have not been returned.
func Active(loans []model.Loan) []model.Loan {
	out := make([]model.Loan, 0, len(loans))
	for _, l := range loans {
		if l.Active() {
			out = append(out, l)
		}
	}
	return out
}

// MatchActive finds the open loan for b. Candidates are tried in order:
// the loan's book record id against b's record id, then an ISBN carried by
// an embedded book against b's ISBN, and last a bare book reference equal
// to b's ISBN, which is what a borrow made by ISBN leaves behind.
func MatchActive(loans []model.Loan, b model.Book) (model.Loan, bool) {
	active := Active(loans)
	steps := []func(model.BookRef) bool{
		func(r model.BookRef) bool { return b.ID != "" && r.ID == b.ID },
		func(r model.BookRef) bool { return b.ISBN != "" && r.ISBN == b.ISBN },
		func(r model.BookRef) bool { return b.ISBN != "" && !r.Embedded && r.ID == b.ISBN },
	}
	for _, match := range steps {
		for _, l := range active {
			if match(l.Book) {
				return l, true
			}
		}
	}
	return model.Loan{}, false
}
