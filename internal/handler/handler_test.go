package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/handler"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/library"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/session"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/storage"

	service_mocks "github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/handler/mocks"
)

var (
	librarian = model.Profile{"_id": "u1", "name": "Lin", "role": "librarian"}
	borrower  = model.Profile{"_id": "u2", "name": "Bo", "isBorrower": true}

	books = []model.Book{
		{ID: "b1", ISBN: "A1", Title: "Dune", Author: "Herbert", Quantity: 3, AvailableBooks: 2},
		{ID: "b2", ISBN: "B2", Title: "Emma", Author: "Austen", Quantity: 2, AvailableBooks: 0},
	}
)

type env struct {
	auth    *service_mocks.MockAuthService
	library *service_mocks.MockLibraryService
	borrow  *service_mocks.MockBorrowService
	store   *session.Store
	router  *echo.Echo
}

// newEnv logs in profile when it is not nil.
func newEnv(t *testing.T, profile model.Profile) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	e := &env{
		auth:    service_mocks.NewMockAuthService(ctrl),
		library: service_mocks.NewMockLibraryService(ctrl),
		borrow:  service_mocks.NewMockBorrowService(ctrl),
		store:   session.New(storage.NewMemory(), zap.NewNop()),
	}
	ctx := context.Background()
	e.store.Init(ctx)
	if profile != nil {
		require.NoError(t, e.store.Login(ctx, profile, "tok"))
	}
	h := handler.New(zap.NewNop(), e.store, handler.Services{Auth: e.auth, Library: e.library, Borrow: e.borrow})
	e.router = h.NewRouter(0)
	return e
}

func (e *env) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, model.JSON.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		profile      model.Profile
		target       string
		mockBehavior mockBehavior
		wantRoute    shell.Route
		wantBooks    int
		wantError    string
		wantActions  []shell.Action
	}{
		{
			name:   "anonymous listing is public",
			target: "/api/v1/books?q=dune",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBooks(gomock.Any(), "dune").Return(books[:1], http.StatusOK, nil)
			},
			wantRoute:   shell.RedirectLogin,
			wantBooks:   1,
			wantActions: []shell.Action{},
		},
		{
			name:    "librarian gets edit actions",
			profile: librarian,
			target:  "/api/v1/books",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBooks(gomock.Any(), "").Return(books, http.StatusOK, nil)
			},
			wantRoute:   shell.Allow,
			wantBooks:   2,
			wantActions: []shell.Action{shell.ActionEdit, shell.ActionDelete},
		},
		{
			name:    "fetch failure is a recoverable state",
			profile: borrower,
			target:  "/api/v1/books",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBooks(gomock.Any(), "").
					Return(nil, 0, &errs.TransportError{Op: "GET /api/books", Err: errors.New("connection refused")})
			},
			wantRoute:   shell.Allow,
			wantBooks:   0,
			wantError:   "connection refused",
			wantActions: []shell.Action{shell.ActionBorrow, shell.ActionReturn},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t, tt.profile)
			tt.mockBehavior(e.library)

			rec := e.do(http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)
			view := decode[handler.BooksView](t, rec)
			require.Equal(t, tt.wantRoute, view.Frame.Route)
			require.Len(t, view.Books, tt.wantBooks)
			require.Equal(t, tt.wantError, view.Error)
			require.Equal(t, tt.wantActions, view.Frame.Actions)
			if tt.wantError != "" {
				require.Equal(t, []notice.Notice{notice.Error(tt.wantError)}, view.Notices)
			}
		})
	}
}

func TestHandler_BookMutations(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}

	tests := []struct {
		name         string
		profile      model.Profile
		method       string
		target       string
		body         string
		mockBehavior func(r *service_mocks.MockLibraryService)
		response     response
	}{
		{
			name:         "anonymous cannot add",
			method:       http.MethodPost,
			target:       "/api/v1/books",
			body:         `{"title":"T","isbn":"C3","author":"A"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Please log in first"}`},
		},
		{
			name:         "borrower cannot add",
			profile:      borrower,
			method:       http.MethodPost,
			target:       "/api/v1/books",
			body:         `{"title":"T","isbn":"C3","author":"A"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"This action is not available for your role"}`},
		},
		{
			name:         "missing required fields",
			profile:      librarian,
			method:       http.MethodPost,
			target:       "/api/v1/books",
			body:         `{"title":"T"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"Please fill in all required fields"}`},
		},
		{
			name:    "librarian adds",
			profile: librarian,
			method:  http.MethodPost,
			target:  "/api/v1/books",
			body:    `{"title":"T","isbn":"C3","author":"A","quantity":1,"availableBooks":1}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CreateBook(gomock.Any(), "tok", model.BookDraft{Title: "T", ISBN: "C3", Author: "A", Quantity: 1, AvailableBooks: 1}).
					Return(library.Echo{}, http.StatusCreated, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"book":{"isbn":"C3","title":"T","author":"A","quantity":1,"availableBooks":1},"notices":[{"level":"success","text":"Book added"}]}`,
			},
		},
		{
			name:         "borrower cannot delete",
			profile:      borrower,
			method:       http.MethodDelete,
			target:       "/api/v1/books/A1",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response:     response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"This action is not available for your role"}`},
		},
		{
			name:    "librarian deletes",
			profile: librarian,
			method:  http.MethodDelete,
			target:  "/api/v1/books/A1",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().DeleteBook(gomock.Any(), "tok", "A1").Return(http.StatusOK, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"notices":[{"level":"success","text":"Book deleted"}]}`},
		},
		{
			name:    "server message is passed through",
			profile: librarian,
			method:  http.MethodPut,
			target:  "/api/v1/books/A1",
			body:    `{"title":"Dune","author":"Herbert","quantity":3,"availableBooks":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().UpdateBook(gomock.Any(), "tok", "A1", model.BookPatch{Title: "Dune", Author: "Herbert", Quantity: 3, AvailableBooks: 2}).
					Return(library.Echo{}, http.StatusNotFound, &errs.APIError{Status: http.StatusNotFound, Message: "Book not found"})
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"Book not found"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t, tt.profile)
			tt.mockBehavior(e.library)

			rec := e.do(tt.method, tt.target, tt.body)
			require.Equal(t, tt.response.expectedCode, rec.Code)
			require.JSONEq(t, tt.response.expectedBody, rec.Body.String())
		})
	}
}

func TestHandler_EditForm(t *testing.T) {
	t.Parallel()
	e := newEnv(t, librarian)
	e.library.EXPECT().GetBooks(gomock.Any(), "").Return(books, http.StatusOK, nil).Times(2)

	rec := e.do(http.MethodGet, "/api/v1/books/B2/edit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[handler.EditFormView](t, rec)
	require.Equal(t, model.BookPatch{Title: "Emma", Author: "Austen", Quantity: 2}, view.Form)

	rec = e.do(http.MethodGet, "/api/v1/books/Z9/edit", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BorrowReturn(t *testing.T) {
	t.Parallel()

	t.Run("borrow", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, borrower)
		e.borrow.EXPECT().Borrow(gomock.Any(), "tok", "b1").Return(model.MessageResponse{Message: "Book borrowed"}, http.StatusOK, nil)

		rec := e.do(http.MethodPost, "/api/v1/borrow", `{"_id":"b1","isbn":"A1","availableBooks":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[handler.ActionResult](t, rec)
		require.Equal(t, 1, res.Book.AvailableBooks)
		require.Equal(t, []notice.Notice{notice.Success("Book borrowed")}, res.Notices)
	})

	t.Run("librarian cannot borrow", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, librarian)
		rec := e.do(http.MethodPost, "/api/v1/borrow", `{"_id":"b1"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("return without an active loan", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, borrower)
		e.borrow.EXPECT().History(gomock.Any(), "tok").Return([]model.Loan{}, http.StatusOK, nil)

		rec := e.do(http.MethodPost, "/api/v1/return", `{"_id":"b1","isbn":"A1"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"message":"No active borrow record found for this book"}`, rec.Body.String())
	})

	t.Run("return", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, borrower)
		var loans model.HistoryResponse
		require.NoError(t, model.JSON.Unmarshal([]byte(`{"borrows":[{"_id":"l1","bookId":{"_id":"b1"},"returnDate":null}]}`), &loans))
		e.borrow.EXPECT().History(gomock.Any(), "tok").Return(loans.Borrows, http.StatusOK, nil)
		e.borrow.EXPECT().Return(gomock.Any(), "tok", "l1").Return(model.MessageResponse{}, http.StatusOK, nil)

		rec := e.do(http.MethodPost, "/api/v1/return", `{"_id":"b1","isbn":"A1","availableBooks":0}`)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[handler.ActionResult](t, rec)
		require.Equal(t, 1, res.Book.AvailableBooks)
		require.Equal(t, "l1", res.Loan.ID)
	})
}

func TestHandler_History(t *testing.T) {
	t.Parallel()
	e := newEnv(t, borrower)
	var loans model.HistoryResponse
	require.NoError(t, model.JSON.Unmarshal([]byte(`{"borrows":[
		{"_id":"l1","bookId":"b1","returnDate":null},
		{"_id":"l2","bookId":"b2","returnDate":"2024-03-01T10:00:00Z"}
	]}`), &loans))
	e.borrow.EXPECT().History(gomock.Any(), "tok").Return(loans.Borrows, http.StatusOK, nil)

	rec := e.do(http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[handler.HistoryView](t, rec)
	require.Len(t, view.Active, 1)
	require.Len(t, view.Returned, 1)
	require.Equal(t, "l2", view.Returned[0].ID)

	anon := newEnv(t, nil)
	require.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/api/v1/history", "").Code)
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()

	t.Run("borrower", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, borrower)
		e.library.EXPECT().GetBooks(gomock.Any(), "").Return(books, http.StatusOK, nil)
		e.borrow.EXPECT().History(gomock.Any(), "tok").
			Return([]model.Loan{{ID: "l1", Book: model.BookRef{ID: "b2"}}}, http.StatusOK, nil)

		rec := e.do(http.MethodGet, "/api/v1/dashboard", "")
		require.Equal(t, http.StatusOK, rec.Code)
		view := decode[handler.DashboardView](t, rec)
		require.Equal(t, handler.Summary{Titles: 2, TotalCopies: 5, AvailableCopies: 2, BorrowedCopies: 3, ActiveLoans: 1}, view.Summary)
		require.Equal(t, "Welcome back, Bo", view.Frame.Greeting)
		require.Len(t, view.ActiveLoans, 1)
	})

	t.Run("librarian skips history", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, librarian)
		e.library.EXPECT().GetBooks(gomock.Any(), "").Return(books, http.StatusOK, nil)

		rec := e.do(http.MethodGet, "/api/v1/dashboard", "")
		require.Equal(t, http.StatusOK, rec.Code)
		view := decode[handler.DashboardView](t, rec)
		require.Equal(t, role.Librarian, view.Frame.Role)
		require.Empty(t, view.ActiveLoans)
	})

	t.Run("upstream failure", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, librarian)
		e.library.EXPECT().GetBooks(gomock.Any(), "").
			Return(nil, http.StatusInternalServerError, &errs.APIError{Status: http.StatusInternalServerError})

		rec := e.do(http.MethodGet, "/api/v1/dashboard", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"message":"Request failed with status code 500"}`, rec.Body.String())
	})
}

func TestHandler_Session(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	rec := e.do(http.MethodPost, "/api/v1/session/login", `{"email":"a@b.c"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e.auth.EXPECT().Login(gomock.Any(), model.LoginRequest{Email: "a@b.c", Password: "bad"}).
		Return(model.LoginResponse{}, http.StatusUnauthorized, &errs.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"})
	rec = e.do(http.MethodPost, "/api/v1/session/login", `{"email":"a@b.c","password":"bad"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	require.Equal(t, session.Unauthenticated, e.store.State())

	e.auth.EXPECT().Login(gomock.Any(), model.LoginRequest{Email: "a@b.c", Password: "pw"}).
		Return(model.LoginResponse{Token: "tok", User: librarian}, http.StatusOK, nil)
	rec = e.do(http.MethodPost, "/api/v1/session/login", `{"email":"a@b.c","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[handler.SessionView](t, rec)
	require.Equal(t, "/librarian", view.Home)
	require.Equal(t, role.Librarian, view.Frame.Role)
	require.Equal(t, "tok", e.store.Token())

	rec = e.do(http.MethodGet, "/api/v1/session", "")
	require.Equal(t, shell.Allow, decode[handler.SessionView](t, rec).Frame.Route)

	rec = e.do(http.MethodPost, "/api/v1/session/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, shell.RedirectLogin, decode[handler.SessionView](t, rec).Frame.Route)
	require.Equal(t, session.Unauthenticated, e.store.State())
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	rec := e.do(http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}
