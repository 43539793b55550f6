package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
)

// Dashboard godoc
// @Summary dashboard summary
// @Description Catalog counts for everyone; borrowers also get their open loans. Both are fetched concurrently.
// @Tags views
// @Produce json
// @Success 200 {object} DashboardView
// @Failure 401,502 {object} echo.HTTPError
// @Router /api/v1/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	r, err := h.authorize("")
	if err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	var (
		books []model.Book
		loans []model.Loan
	)
	gg, ctx := errgroup.WithContext(requestContext(c))
	gg.Go(func() error {
		list, err := v.catalog.List(ctx, "")
		if err != nil {
			return httpError(err, "Failed to fetch books")
		}
		books = list
		return nil
	})
	if r == role.Borrower {
		gg.Go(func() error {
			list, err := v.loans.History(ctx)
			if err != nil {
				return httpError(err, "Failed to fetch borrow history")
			}
			loans = loan.Active(list)
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return err
	}

	view := DashboardView{Frame: h.frame(), Summary: Summarize(books)}
	if r == role.Borrower {
		view.ActiveLoans = loans
		view.Summary.ActiveLoans = len(loans)
	}
	return c.JSON(http.StatusOK, view)
}
