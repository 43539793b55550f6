package handler

import (
	"context"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/auth"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/borrow"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/library"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService    = (*auth.Service)(nil)
	_ LibraryService = (*library.Service)(nil)
	_ BorrowService  = (*borrow.Service)(nil)
)

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, int, error)
}

type LibraryService interface {
	catalog.BookService
}

type BorrowService interface {
	loan.BorrowService
}
