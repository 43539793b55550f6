package auth

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service"
)

var ErrEmptyLogin = errors.New("login response carried no token or user")

type Service struct {
	log    *zap.Logger
	client *service.Client
}

func NewService(log *zap.Logger, client *service.Client) *Service {
	return &Service{
		log:    log.Named("auth"),
		client: client,
	}
}

// Login exchanges credentials for a token and the user's profile.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, int, error) {
	data, status, err := s.client.Do(ctx, service.Request{
		Method: http.MethodPost,
		Path:   []string{"api", "login"},
		Body:   req,
	})
	if err != nil {
		return model.LoginResponse{}, status, err
	}
	var resp model.LoginResponse
	if err := model.JSON.Unmarshal(data, &resp); err != nil {
		return model.LoginResponse{}, status, errors.Wrap(err, "decode login response")
	}
	if resp.Token == "" || resp.User == nil {
		return model.LoginResponse{}, status, ErrEmptyLogin
	}
	return resp, status, nil
}
