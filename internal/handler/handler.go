package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/activity"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/session"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/validate"
	_ "github.com/Sandeshdahal10/Library-Management-System-Frontend/swagger"
)

type Services struct {
	Auth    AuthService
	Library LibraryService
	Borrow  BorrowService
}

// Handler serves the view shell: role-gated view models over the local
// session, with actions forwarded to the catalog and loan clients.
type Handler struct {
	authSvc    AuthService
	librarySvc LibraryService
	borrowSvc  BorrowService
	session    *session.Store
	resolver   *role.Resolver
	publisher  activity.Publisher
	log        *zap.Logger
}

type Option func(*Handler)

func WithPublisher(p activity.Publisher) Option {
	return func(h *Handler) { h.publisher = p }
}

func New(log *zap.Logger, store *session.Store, svc Services, opts ...Option) *Handler {
	h := &Handler{
		authSvc:    svc.Auth,
		librarySvc: svc.Library,
		borrowSvc:  svc.Borrow,
		session:    store,
		resolver:   role.NewResolver(log),
		publisher:  activity.Nop(),
		log:        log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter builds the echo router. rps limits requests per client on the
// api group; zero disables the limit.
func (h *Handler) NewRouter(rps float64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = validate.NewCustomValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))

	e.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := []echo.MiddlewareFunc{
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
	}
	if rps > 0 {
		mw = append(mw, newRateLimiterMW(rate.Limit(rps)))
	}
	api := e.Group("/api/v1", mw...)

	api.GET("/session", h.GetSession)
	api.POST("/session/login", h.Login)
	api.POST("/session/logout", h.Logout)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/books", h.GetBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:isbn/edit", h.EditForm)
	api.PUT("/books/:isbn", h.UpdateBook)
	api.DELETE("/books/:isbn", h.DeleteBook)

	api.POST("/borrow", h.Borrow)
	api.POST("/return", h.Return)
	api.GET("/history", h.History)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// authorize guards a view and, when action is set, the role gate for it.
func (h *Handler) authorize(action shell.Action) (role.Role, error) {
	switch shell.Guard(h.session) {
	case shell.Loading:
		return role.None, echo.NewHTTPError(http.StatusServiceUnavailable, "Session is loading")
	case shell.RedirectLogin:
		return role.None, httpError(errs.ErrUnauthenticated, "")
	}
	r := h.resolver.Resolve(h.session.Profile())
	if action != "" && !shell.Allowed(r, action) {
		return r, httpError(errs.ErrForbidden, "")
	}
	return r, nil
}

func (h *Handler) frame() shell.Frame {
	return shell.Describe(h.session, h.resolver)
}

// view is one request's working copy of the catalog, closed with the request.
type view struct {
	catalog *catalog.Client
	loans   *loan.Client
	notices *notice.Recorder
}

func (h *Handler) openView() *view {
	rec := &notice.Recorder{}
	n := notice.Logged(h.log, rec)
	books := catalog.NewClient(h.log, h.librarySvc, h.session, n, catalog.WithPublisher(h.publisher))
	loans := loan.NewClient(h.log, h.borrowSvc, h.session, n,
		loan.WithView(books.View()),
		loan.WithPublisher(h.publisher),
	)
	return &view{catalog: books, loans: loans, notices: rec}
}

func (v *view) close() { v.catalog.Close() }

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}
