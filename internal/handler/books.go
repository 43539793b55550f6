package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

// GetBooks godoc
// @Summary catalog view
// @Description Listing is public. A failed fetch still answers 200 with the error set so the page can offer a retry.
// @Tags books
// @Produce json
// @Param q query string false "search term"
// @Success 200 {object} BooksView
// @Router /api/v1/books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	v := h.openView()
	defer v.close()

	_, err := v.catalog.List(requestContext(c), c.QueryParam("q"))
	if errors.Is(err, errs.ErrViewClosed) {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, BooksView{
		Frame:   h.frame(),
		Books:   v.catalog.View().Books(),
		Error:   v.catalog.View().Err(),
		Notices: v.notices.Drain(),
	})
}

// CreateBook godoc
// @Summary add a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body model.BookDraft true "book"
// @Success 201 {object} ActionResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	if _, err := h.authorize(shell.ActionAdd); err != nil {
		return err
	}
	var draft model.BookDraft
	if err := c.Bind(&draft); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	book, err := v.catalog.Create(requestContext(c), draft)
	if err != nil {
		return httpError(err, "Failed to create")
	}
	return c.JSON(http.StatusCreated, ActionResult{Book: &book, Notices: v.notices.Drain()})
}

// EditForm godoc
// @Summary edit form seeded from the listed book
// @Tags books
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} EditFormView
// @Failure 401,403,404 {object} echo.HTTPError
// @Router /api/v1/books/{isbn}/edit [get]
func (h *Handler) EditForm(c echo.Context) error {
	if _, err := h.authorize(shell.ActionEdit); err != nil {
		return err
	}
	isbn := c.Param("isbn")
	v := h.openView()
	defer v.close()

	books, err := v.catalog.List(requestContext(c), "")
	if err != nil {
		return httpError(err, "Failed to fetch books")
	}
	for _, b := range books {
		if b.ISBN == isbn {
			return c.JSON(http.StatusOK, EditFormView{Book: b, Form: catalog.EditForm(b)})
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Book not found")
}

// UpdateBook godoc
// @Summary update a book by ISBN
// @Tags books
// @Accept json
// @Produce json
// @Param isbn path string true "ISBN"
// @Param request body model.BookPatch true "new values"
// @Success 200 {object} ActionResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /api/v1/books/{isbn} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	if _, err := h.authorize(shell.ActionEdit); err != nil {
		return err
	}
	var patch model.BookPatch
	if err := c.Bind(&patch); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	book, err := v.catalog.Update(requestContext(c), c.Param("isbn"), patch)
	if err != nil {
		return httpError(err, "Failed to update")
	}
	return c.JSON(http.StatusOK, ActionResult{Book: &book, Notices: v.notices.Drain()})
}

// DeleteBook godoc
// @Summary delete a book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} ActionResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /api/v1/books/{isbn} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	if _, err := h.authorize(shell.ActionDelete); err != nil {
		return err
	}
	v := h.openView()
	defer v.close()

	if err := v.catalog.Delete(requestContext(c), c.Param("isbn")); err != nil {
		return httpError(err, "Failed to delete")
	}
	return c.JSON(http.StatusOK, ActionResult{Notices: v.notices.Drain()})
}
