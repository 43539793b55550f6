package handler

import (
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

type SessionView struct {
	Frame shell.Frame `json:"frame"`
	Home  string      `json:"home,omitempty"`
}

type BooksView struct {
	Frame shell.Frame  `json:"frame"`
	Books []model.Book `json:"books"`
	// Error is set when the list could not be fetched; the client may retry.
	Error   string          `json:"error,omitempty"`
	Notices []notice.Notice `json:"notices"`
}

type EditFormView struct {
	Book model.Book      `json:"book"`
	Form model.BookPatch `json:"form"`
}

type ActionResult struct {
	Book    *model.Book     `json:"book,omitempty"`
	Loan    *model.Loan     `json:"loan,omitempty"`
	Notices []notice.Notice `json:"notices"`
}

type HistoryView struct {
	Frame    shell.Frame  `json:"frame"`
	Active   []model.Loan `json:"active"`
	Returned []model.Loan `json:"returned"`
}

type Summary struct {
	Titles          int `json:"titles"`
	TotalCopies     int `json:"totalCopies"`
	AvailableCopies int `json:"availableCopies"`
	BorrowedCopies  int `json:"borrowedCopies"`
	ActiveLoans     int `json:"activeLoans,omitempty"`
}

type DashboardView struct {
	Frame   shell.Frame `json:"frame"`
	Summary Summary     `json:"summary"`
	// ActiveLoans is only filled for borrowers.
	ActiveLoans []model.Loan `json:"activeLoans,omitempty"`
}

func Summarize(books []model.Book) Summary {
	s := Summary{Titles: len(books)}
	for _, b := range books {
		s.TotalCopies += b.Quantity
		s.AvailableCopies += b.AvailableBooks
	}
	s.BorrowedCopies = s.TotalCopies - s.AvailableCopies
	return s
}
