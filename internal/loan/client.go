package loan

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/activity"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
)

const (
	fallbackBorrow  = "Failed to borrow"
	fallbackReturn  = "Failed to return"
	fallbackHistory = "Failed to fetch borrow history"
)

// Client runs borrow and return for the current user and keeps the
// availability shown in a catalog view in step.
type Client struct {
	log       *zap.Logger
	svc       BorrowService
	creds     catalog.Credentials
	view      *catalog.Projection
	notifier  notice.Notifier
	publisher activity.Publisher
}

type Option func(*Client)

func WithPublisher(p activity.Publisher) Option {
	return func(c *Client) { c.publisher = p }
}

// WithView makes successful borrows and returns adjust view.
func WithView(view *catalog.Projection) Option {
	return func(c *Client) { c.view = view }
}

func NewClient(log *zap.Logger, svc BorrowService, creds catalog.Credentials, n notice.Notifier, opts ...Option) *Client {
	if n == nil {
		n = notice.Discard
	}
	c := &Client{
		log:       log.Named("loan"),
		svc:       svc,
		creds:     creds,
		notifier:  n,
		publisher: activity.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Borrow borrows b and takes one copy off its available count.
func (c *Client) Borrow(ctx context.Context, b model.Book) error {
	id, err := Identifier(b)
	if err != nil {
		return c.fail(err, fallbackBorrow)
	}
	token := c.creds.Token()
	if token == "" {
		return c.fail(errs.ErrUnauthenticated, fallbackBorrow)
	}

	resp, _, err := c.svc.Borrow(ctx, token, id)
	if err != nil {
		return c.fail(err, fallbackBorrow)
	}
	msg := resp.Message
	if msg == "" {
		msg = "Book borrowed"
	}
	c.adjust(b, -1, notice.Success(msg))
	c.publisher.Publish(ctx, activity.ForBook(activity.BookBorrowed, c.creds.Profile().ID(), b))
	return nil
}

// Return finds the open loan for b in the user's history and returns it.
// Without an open loan nothing is sent and nothing changes locally.
func (c *Client) Return(ctx context.Context, b model.Book) (model.Loan, error) {
	if !b.Identified() {
		return model.Loan{}, c.fail(errs.ErrMissingReturnID, fallbackReturn)
	}
	token := c.creds.Token()
	if token == "" {
		return model.Loan{}, c.fail(errs.ErrUnauthenticated, fallbackReturn)
	}

	loans, _, err := c.svc.History(ctx, token)
	if err != nil {
		return model.Loan{}, c.fail(err, fallbackReturn)
	}
	l, ok := MatchActive(loans, b)
	if !ok {
		return model.Loan{}, c.fail(errs.ErrNoActiveLoan, fallbackReturn)
	}
	if l.ID == "" {
		return model.Loan{}, c.fail(errs.ErrNoLoanID, fallbackReturn)
	}

	resp, _, err := c.svc.Return(ctx, token, l.ID)
	if err != nil {
		return model.Loan{}, c.fail(err, fallbackReturn)
	}
	msg := resp.Message
	if msg == "" {
		msg = "Book returned"
	}
	c.adjust(b, 1, notice.Success(msg))
	e := activity.ForBook(activity.BookReturned, c.creds.Profile().ID(), b)
	e.LoanID = l.ID
	c.publisher.Publish(ctx, e)
	return l, nil
}

// History lists every loan of the current user, newest first as served.
func (c *Client) History(ctx context.Context) ([]model.Loan, error) {
	token := c.creds.Token()
	if token == "" {
		return nil, c.fail(errs.ErrUnauthenticated, fallbackHistory)
	}
	loans, _, err := c.svc.History(ctx, token)
	if err != nil {
		return nil, c.fail(err, fallbackHistory)
	}
	return loans, nil
}

func (c *Client) adjust(b model.Book, delta int, n notice.Notice) {
	if c.view != nil {
		err := c.view.Apply(func(books []model.Book) []model.Book {
			return catalog.AdjustAvailable(books, b, delta)
		})
		if err != nil {
			c.log.Debug("view closed, dropping result")
			return
		}
	}
	c.notifier.Notify(n)
}

func (c *Client) fail(err error, fallback string) error {
	c.log.Debug("loan action failed", zap.Error(err))
	if c.view == nil || c.view.Alive() {
		c.notifier.Notify(notice.Error(errs.Message(errors.Cause(err), fallback)))
	}
	return err
}
