package catalog

import (
	"context"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/library"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	GetBooks(ctx context.Context, query string) ([]model.Book, int, error)
	CreateBook(ctx context.Context, token string, draft model.BookDraft) (library.Echo, int, error)
	UpdateBook(ctx context.Context, token, isbn string, patch model.BookPatch) (library.Echo, int, error)
	DeleteBook(ctx context.Context, token, isbn string) (int, error)
}

// Credentials is the part of the session a client reads.
type Credentials interface {
	Token() string
	Profile() model.Profile
}

var (
	_ BookService = (*library.Service)(nil)
	_ Credentials = (*session.Store)(nil)
)
