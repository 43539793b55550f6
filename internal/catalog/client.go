package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/activity"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/validate"
)

const (
	fallbackList   = "Failed to fetch books"
	fallbackCreate = "Failed to create"
	fallbackUpdate = "Failed to update"
	fallbackDelete = "Failed to delete"
)

// Client runs catalog actions for one view and keeps its Projection in step
// with the remote API.
type Client struct {
	log       *zap.Logger
	svc       BookService
	creds     Credentials
	notifier  notice.Notifier
	publisher activity.Publisher
	validator *validate.CustomValidator
	view      *Projection
}

type Option func(*Client)

func WithPublisher(p activity.Publisher) Option {
	return func(c *Client) { c.publisher = p }
}

func NewClient(log *zap.Logger, svc BookService, creds Credentials, n notice.Notifier, opts ...Option) *Client {
	if n == nil {
		n = notice.Discard
	}
	c := &Client{
		log:       log.Named("catalog"),
		svc:       svc,
		creds:     creds,
		notifier:  n,
		publisher: activity.Nop(),
		validator: validate.NewCustomValidator(),
		view:      NewProjection(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) View() *Projection { return c.view }

// Close discards the view. In-flight calls finish but their results are dropped.
func (c *Client) Close() { c.view.Close() }

// List fetches the catalog, optionally filtered. On failure the previous
// list is kept, the projection carries the error and a notice is emitted;
// calling List again is the retry.
func (c *Client) List(ctx context.Context, filter string) ([]model.Book, error) {
	seq := c.view.begin()
	books, _, err := c.svc.GetBooks(ctx, filter)
	if err != nil {
		msg := errs.Message(err, fallbackList)
		if serr := c.view.settle(seq, nil, msg); serr != nil {
			return nil, serr
		}
		c.log.Warn("list books", zap.String("filter", filter), zap.Error(err))
		c.notifier.Notify(notice.Error(msg))
		return nil, err
	}
	if serr := c.view.settle(seq, books, ""); serr != nil {
		return nil, serr
	}
	return books, nil
}

func (c *Client) token() (string, error) {
	token := c.creds.Token()
	if token == "" {
		return "", errs.ErrUnauthenticated
	}
	return token, nil
}

// Create adds a book and appends the server's copy, or the draft itself when
// the server does not echo one.
func (c *Client) Create(ctx context.Context, draft model.BookDraft) (model.Book, error) {
	draft.ISBN = strings.TrimSpace(draft.ISBN)
	token, err := c.token()
	if err == nil {
		err = c.validate(draft)
	}
	if err != nil {
		return model.Book{}, c.fail(err, fallbackCreate)
	}

	echo, _, err := c.svc.CreateBook(ctx, token, draft)
	if err != nil {
		return model.Book{}, c.fail(err, fallbackCreate)
	}
	book := draft.Book()
	if echo.Present {
		book = echo.Book
	}
	c.apply(func(books []model.Book) []model.Book { return Append(books, book) }, notice.Success("Book added"))
	c.publish(ctx, activity.BookCreated, book)
	return book, nil
}

// Update saves patch for isbn. Matching entries are replaced with the
// server's copy when it carries one, otherwise patched in place.
func (c *Client) Update(ctx context.Context, isbn string, patch model.BookPatch) (model.Book, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return model.Book{}, c.fail(errs.ErrMissingISBN, fallbackUpdate)
	}
	token, err := c.token()
	if err == nil {
		err = c.validate(patch)
	}
	if err != nil {
		return model.Book{}, c.fail(err, fallbackUpdate)
	}

	echo, _, err := c.svc.UpdateBook(ctx, token, isbn, patch)
	if err != nil {
		return model.Book{}, c.fail(err, fallbackUpdate)
	}

	var book model.Book
	if echo.Present {
		book = echo.Book
		if book.ISBN == "" {
			book.ISBN = isbn
		}
		c.apply(func(books []model.Book) []model.Book { return ReplaceByISBN(books, isbn, book) }, notice.Success("Book updated"))
	} else {
		book = patch.ApplyTo(model.Book{ISBN: isbn})
		if cur, ok := findISBN(c.view.Books(), isbn); ok {
			book = patch.ApplyTo(cur)
		}
		c.apply(func(books []model.Book) []model.Book { return PatchByISBN(books, isbn, patch) }, notice.Success("Book updated"))
	}
	c.publish(ctx, activity.BookUpdated, book)
	return book, nil
}

// Delete removes every listed entry with the given ISBN.
func (c *Client) Delete(ctx context.Context, isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return c.fail(errs.ErrMissingISBN, fallbackDelete)
	}
	token, err := c.token()
	if err != nil {
		return c.fail(err, fallbackDelete)
	}
	if _, err := c.svc.DeleteBook(ctx, token, isbn); err != nil {
		return c.fail(err, fallbackDelete)
	}
	book, _ := findISBN(c.view.Books(), isbn)
	book.ISBN = isbn
	c.apply(func(books []model.Book) []model.Book { return RemoveByISBN(books, isbn) }, notice.Success("Book deleted"))
	c.publish(ctx, activity.BookDeleted, book)
	return nil
}

func (c *Client) validate(v any) error {
	if err := c.validator.Validate(v); err != nil {
		return errors.Wrap(errs.ErrRequiredFields, err.Error())
	}
	return nil
}

// apply patches the projection and notifies, unless the view has closed.
func (c *Client) apply(f func([]model.Book) []model.Book, n notice.Notice) {
	if err := c.view.Apply(f); err != nil {
		c.log.Debug("view closed, dropping result")
		return
	}
	c.notifier.Notify(n)
}

func (c *Client) fail(err error, fallback string) error {
	c.log.Debug("catalog action failed", zap.Error(err))
	if c.view.Alive() {
		c.notifier.Notify(notice.Error(errs.Message(errors.Cause(err), fallback)))
	}
	return err
}

// publish runs after the local patch and notice so a slow broker never
// delays them.
func (c *Client) publish(ctx context.Context, t activity.Type, b model.Book) {
	c.publisher.Publish(ctx, activity.ForBook(t, c.creds.Profile().ID(), b))
}

func findISBN(books []model.Book, isbn string) (model.Book, bool) {
	for _, b := range books {
		if b.ISBN == isbn {
			return b, true
		}
	}
	return model.Book{}, false
}
