package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

// Borrow godoc
// @Summary borrow a book
// @Description The body is the book as listed; its record id is preferred over its ISBN.
// @Tags loans
// @Accept json
// @Produce json
// @Param request body model.Book true "book"
// @Success 200 {object} ActionResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /api/v1/borrow [post]
func (h *Handler) Borrow(c echo.Context) error {
	if _, err := h.authorize(shell.ActionBorrow); err != nil {
		return err
	}
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	if err := v.loans.Borrow(requestContext(c), book); err != nil {
		return httpError(err, "Failed to borrow")
	}
	book.AvailableBooks--
	return c.JSON(http.StatusOK, ActionResult{Book: &book, Notices: v.notices.Drain()})
}

// Return godoc
// @Summary return a borrowed book
// @Tags loans
// @Accept json
// @Produce json
// @Param request body model.Book true "book"
// @Success 200 {object} ActionResult
// @Failure 400,401,403,404 {object} echo.HTTPError
// @Router /api/v1/return [post]
func (h *Handler) Return(c echo.Context) error {
	if _, err := h.authorize(shell.ActionReturn); err != nil {
		return err
	}
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	l, err := v.loans.Return(requestContext(c), book)
	if err != nil {
		return httpError(err, "Failed to return")
	}
	book.AvailableBooks++
	return c.JSON(http.StatusOK, ActionResult{Book: &book, Loan: &l, Notices: v.notices.Drain()})
}

// History godoc
// @Summary the current user's loans
// @Tags loans
// @Produce json
// @Success 200 {object} HistoryView
// @Failure 401 {object} echo.HTTPError
// @Router /api/v1/history [get]
func (h *Handler) History(c echo.Context) error {
	if _, err := h.authorize(""); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	loans, err := v.loans.History(requestContext(c))
	if err != nil {
		return httpError(err, "Failed to fetch borrow history")
	}
	active := loan.Active(loans)
	returned := make([]model.Loan, 0, len(loans)-len(active))
	for _, l := range loans {
		if !l.Active() {
			returned = append(returned, l)
		}
	}
	return c.JSON(http.StatusOK, HistoryView{Frame: h.frame(), Active: active, Returned: returned})
}
