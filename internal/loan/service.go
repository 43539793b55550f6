package loan

import (
	"context"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/borrow"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowService interface {
	Borrow(ctx context.Context, token, bookID string) (model.MessageResponse, int, error)
	Return(ctx context.Context, token, loanID string) (model.MessageResponse, int, error)
	History(ctx context.Context, token string) ([]model.Loan, int, error)
}

var _ BorrowService = (*borrow.Service)(nil)
