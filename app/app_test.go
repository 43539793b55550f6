package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/config"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/session"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage"
)

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = storage.DriverMemory

	a, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	require.Equal(t, session.Unauthenticated, a.Session.State())
	books := a.Catalog(&notice.Recorder{})
	require.True(t, books.View().Alive())
	require.NotNil(t, a.Loans(&notice.Recorder{}, books.View()))
	require.NotNil(t, a.Loans(&notice.Recorder{}, nil))
}

func TestNew_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = "floppy"
	_, err := New(context.Background(), cfg, zap.NewNop())
	require.ErrorIs(t, err, storage.ErrUnknownDriver)

	cfg = config.Default()
	cfg.Storage.Driver = storage.DriverMemory
	cfg.API.BaseURL = "not a url"
	_, err = New(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
}
