package library

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service"
)

// Echo is the book a mutating call returned, if any.
type Echo struct {
	Book    model.Book
	Present bool
}

type Service struct {
	log    *zap.Logger
	client *service.Client
}

func NewService(log *zap.Logger, client *service.Client) *Service {
	return &Service{
		log:    log.Named("library"),
		client: client,
	}
}

// GetBooks is public: it never sends a credential.
func (s *Service) GetBooks(ctx context.Context, query string) ([]model.Book, int, error) {
	var q url.Values
	if query = strings.TrimSpace(query); query != "" {
		q = url.Values{"q": {query}}
	}
	data, status, err := s.client.Do(ctx, service.Request{
		Method: http.MethodGet,
		Path:   []string{"api", "books"},
		Query:  q,
	})
	if err != nil {
		return nil, status, err
	}
	books, err := model.DecodeBooks(data)
	if err != nil {
		return nil, status, err
	}
	return books, status, nil
}

func (s *Service) CreateBook(ctx context.Context, token string, draft model.BookDraft) (Echo, int, error) {
	return s.mutate(ctx, service.Request{
		Method: http.MethodPost,
		Path:   []string{"api", "books"},
		Token:  token,
		Body:   draft,
	})
}

func (s *Service) UpdateBook(ctx context.Context, token, isbn string, patch model.BookPatch) (Echo, int, error) {
	return s.mutate(ctx, service.Request{
		Method: http.MethodPut,
		Path:   []string{"api", "books", isbn},
		Token:  token,
		Body:   patch,
	})
}

func (s *Service) DeleteBook(ctx context.Context, token, isbn string) (int, error) {
	_, status, err := s.client.Do(ctx, service.Request{
		Method: http.MethodDelete,
		Path:   []string{"api", "books", isbn},
		Token:  token,
	})
	return status, err
}

func (s *Service) mutate(ctx context.Context, r service.Request) (Echo, int, error) {
	data, status, err := s.client.Do(ctx, r)
	if err != nil {
		return Echo{}, status, err
	}
	b, ok := model.DecodeBookEcho(data)
	return Echo{Book: b, Present: ok}, status, nil
}
