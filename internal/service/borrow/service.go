package borrow

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service"
)

type Service struct {
	log    *zap.Logger
	client *service.Client
}

func NewService(log *zap.Logger, client *service.Client) *Service {
	return &Service{
		log:    log.Named("borrow"),
		client: client,
	}
}

func (s *Service) Borrow(ctx context.Context, token, bookID string) (model.MessageResponse, int, error) {
	return s.message(ctx, service.Request{
		Method: http.MethodPost,
		Path:   []string{"api", "borrow"},
		Token:  token,
		Body:   model.BorrowRequest{BookID: bookID},
	})
}

func (s *Service) Return(ctx context.Context, token, loanID string) (model.MessageResponse, int, error) {
	return s.message(ctx, service.Request{
		Method: http.MethodPost,
		Path:   []string{"api", "borrow", "return", loanID},
		Token:  token,
	})
}

func (s *Service) History(ctx context.Context, token string) ([]model.Loan, int, error) {
	data, status, err := s.client.Do(ctx, service.Request{
		Method: http.MethodGet,
		Path:   []string{"api", "borrow", "history"},
		Token:  token,
	})
	if err != nil {
		return nil, status, err
	}
	var resp model.HistoryResponse
	if err := model.JSON.Unmarshal(data, &resp); err != nil {
		return nil, status, errors.Wrap(err, "decode borrow history")
	}
	if resp.Borrows == nil {
		resp.Borrows = []model.Loan{}
	}
	return resp.Borrows, status, nil
}

// message tolerates empty or non-JSON success bodies.
func (s *Service) message(ctx context.Context, r service.Request) (model.MessageResponse, int, error) {
	data, status, err := s.client.Do(ctx, r)
	if err != nil {
		return model.MessageResponse{}, status, err
	}
	var resp model.MessageResponse
	if err := model.JSON.Unmarshal(data, &resp); err != nil {
		s.log.Debug("non-json success body", zap.Int("status", status))
	}
	return resp, status, nil
}
