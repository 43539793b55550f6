package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/config"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/activity"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/handler"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/server"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/auth"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/borrow"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/library"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/session"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/kafka"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage"
)

// App holds what every surface shares: the restored session and the
// remote API services.
type App struct {
	Config    config.Config
	Log       *zap.Logger
	Session   *session.Store
	Resolver  *role.Resolver
	Auth      *auth.Service
	Library   *library.Service
	Borrow    *borrow.Service
	Publisher activity.Publisher

	closers []func() error
}

// New opens local storage, restores the session and connects the API
// clients. Kafka is optional: without brokers activity is not published.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	st, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}
	client, err := service.NewClient(log, cfg.API)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Log:       log,
		Session:   session.New(st, log),
		Resolver:  role.NewResolver(log),
		Auth:      auth.NewService(log, client),
		Library:   library.NewService(log, client),
		Borrow:    borrow.NewService(log, client),
		Publisher: activity.Nop(),
	}
	a.closers = append(a.closers, a.Session.Close)

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Warn("kafka unavailable, activity will not be published", zap.Error(err))
		} else {
			a.Publisher = activity.NewKafkaPublisher(producer, cfg.Kafka.TopicOrDefault(), log)
			a.closers = append(a.closers, producer.Close)
		}
	}

	state := a.Session.Init(ctx)
	log.Debug("session restored", zap.Stringer("state", state))
	return a, nil
}

// Catalog opens a catalog view reporting to n.
func (a *App) Catalog(n notice.Notifier) *catalog.Client {
	return catalog.NewClient(a.Log, a.Library, a.Session, n, catalog.WithPublisher(a.Publisher))
}

// Loans returns a loan client adjusting view, which may be nil.
func (a *App) Loans(n notice.Notifier, view *catalog.Projection) *loan.Client {
	opts := []loan.Option{loan.WithPublisher(a.Publisher)}
	if view != nil {
		opts = append(opts, loan.WithView(view))
	}
	return loan.NewClient(a.Log, a.Borrow, a.Session, n, opts...)
}

// Close releases storage and the producer but keeps the persisted session.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Serve runs the view shell server until SIGINT or SIGTERM.
func (a *App) Serve() error {
	log := a.Log
	h := handler.New(log, a.Session, handler.Services{
		Auth:    a.Auth,
		Library: a.Library,
		Borrow:  a.Borrow,
	}, handler.WithPublisher(a.Publisher))

	srv := server.NewServer(a.Config.Server, h.NewRouter(a.Config.Server.RateLimit))
	log.Info("http server start ON: ", zap.String("addr", srv.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server run")
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		return errors.Wrap(err, "srv.Stop")
	}
	log.Info("Graceful shutdown finished")
	return nil
}
