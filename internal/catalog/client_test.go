package catalog_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/service/library"

	catalog_mocks "github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog/mocks"
)

var seedBooks = []model.Book{
	{ID: "1", ISBN: "A1", Title: "Dune", Author: "Herbert", Quantity: 3, AvailableBooks: 2},
	{ID: "2", ISBN: "B2", Title: "Emma", Author: "Austen", Quantity: 1, AvailableBooks: 1},
}

type fixture struct {
	svc     *catalog_mocks.MockBookService
	notices *notice.Recorder
	client  *catalog.Client
	ctx     context.Context
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := catalog_mocks.NewMockBookService(ctrl)
	creds := catalog_mocks.NewMockCredentials(ctrl)
	creds.EXPECT().Token().Return(token).AnyTimes()
	creds.EXPECT().Profile().Return(model.Profile{"_id": "u1"}).AnyTimes()
	rec := &notice.Recorder{}
	return &fixture{
		svc:     svc,
		notices: rec,
		client:  catalog.NewClient(zap.NewNop(), svc, creds, rec),
		ctx:     context.Background(),
	}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	f.svc.EXPECT().GetBooks(f.ctx, "").Return(seedBooks, http.StatusOK, nil)
	_, err := f.client.List(f.ctx, "")
	require.NoError(t, err)
	f.notices.Drain()
}

func TestClient_List(t *testing.T) {
	t.Parallel()
	f := newFixture(t, "")
	f.seed(t)
	require.Equal(t, seedBooks, f.client.View().Books())
	require.True(t, f.client.View().Loaded())

	f.svc.EXPECT().GetBooks(f.ctx, "dune").
		Return(nil, 0, &errs.TransportError{Op: "GET /api/books", Err: errors.New("connection refused")})
	_, err := f.client.List(f.ctx, "dune")
	require.Error(t, err)
	require.Equal(t, seedBooks, f.client.View().Books(), "previous data kept")
	require.Equal(t, "connection refused", f.client.View().Err())
	require.Equal(t, notice.Error("connection refused"), f.notices.Last())

	// retry clears the error
	f.svc.EXPECT().GetBooks(f.ctx, "dune").Return(seedBooks[:1], http.StatusOK, nil)
	books, err := f.client.List(f.ctx, "dune")
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Empty(t, f.client.View().Err())
}

func TestClient_ListFallbackMessage(t *testing.T) {
	t.Parallel()
	f := newFixture(t, "")
	f.svc.EXPECT().GetBooks(f.ctx, "").Return(nil, http.StatusBadGateway, &errs.APIError{Status: http.StatusBadGateway})
	_, err := f.client.List(f.ctx, "")
	require.Error(t, err)
	require.Equal(t, "Request failed with status code 502", f.notices.Last().Text)
}

func TestClient_Create(t *testing.T) {
	t.Parallel()
	draft := model.BookDraft{Title: "Ulysses", ISBN: "C3", Author: "Joyce", Quantity: 2, AvailableBooks: 2}

	tests := []struct {
		name      string
		token     string
		draft     model.BookDraft
		mock      func(svc *catalog_mocks.MockBookService)
		wantErr   error
		wantTitle []string
		wantText  string
	}{
		{
			name:  "server echo appended",
			token: "tok",
			draft: draft,
			mock: func(svc *catalog_mocks.MockBookService) {
				svc.EXPECT().CreateBook(gomock.Any(), "tok", draft).
					Return(library.Echo{Book: model.Book{ID: "9", ISBN: "C3", Title: "Ulysses (echo)"}, Present: true}, http.StatusCreated, nil)
			},
			wantTitle: []string{"Dune", "Emma", "Ulysses (echo)"},
			wantText:  "Book added",
		},
		{
			name:  "draft appended without echo",
			token: "tok",
			draft: draft,
			mock: func(svc *catalog_mocks.MockBookService) {
				svc.EXPECT().CreateBook(gomock.Any(), "tok", draft).Return(library.Echo{}, http.StatusCreated, nil)
			},
			wantTitle: []string{"Dune", "Emma", "Ulysses"},
			wantText:  "Book added",
		},
		{
			name:      "no credential",
			draft:     draft,
			mock:      func(svc *catalog_mocks.MockBookService) {},
			wantErr:   errs.ErrUnauthenticated,
			wantTitle: []string{"Dune", "Emma"},
			wantText:  "Please log in first",
		},
		{
			name:      "required field missing",
			token:     "tok",
			draft:     model.BookDraft{Title: "No isbn", Author: "x"},
			mock:      func(svc *catalog_mocks.MockBookService) {},
			wantErr:   errs.ErrRequiredFields,
			wantTitle: []string{"Dune", "Emma"},
			wantText:  "Please fill in all required fields",
		},
		{
			name:  "server rejects",
			token: "tok",
			draft: draft,
			mock: func(svc *catalog_mocks.MockBookService) {
				svc.EXPECT().CreateBook(gomock.Any(), "tok", draft).
					Return(library.Echo{}, http.StatusConflict, &errs.APIError{Status: http.StatusConflict, Message: "ISBN already exists"})
			},
			wantTitle: []string{"Dune", "Emma"},
			wantText:  "ISBN already exists",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, tt.token)
			f.seed(t)
			tt.mock(f.svc)

			_, err := f.client.Create(f.ctx, tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Equal(t, tt.wantTitle, titles(f.client.View().Books()))
			require.Equal(t, tt.wantText, f.notices.Last().Text)
		})
	}
}

func TestClient_Update(t *testing.T) {
	t.Parallel()
	patch := model.BookPatch{Title: "Dune Messiah", Author: "Herbert", Quantity: 4, AvailableBooks: 3}

	t.Run("optimistic patch without echo", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "tok")
		f.seed(t)
		f.svc.EXPECT().UpdateBook(gomock.Any(), "tok", "A1", patch).
			Return(library.Echo{}, http.StatusOK, nil)

		book, err := f.client.Update(f.ctx, "A1", patch)
		require.NoError(t, err)
		want := model.Book{ID: "1", ISBN: "A1", Title: "Dune Messiah", Author: "Herbert", Quantity: 4, AvailableBooks: 3}
		require.Equal(t, want, book)
		require.Equal(t, []model.Book{want, seedBooks[1]}, f.client.View().Books())
	})

	t.Run("server echo replaces", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "tok")
		f.seed(t)
		echo := model.Book{ID: "1", ISBN: "A1", Title: "Server title", Quantity: 9, AvailableBooks: 9}
		f.svc.EXPECT().UpdateBook(gomock.Any(), "tok", "A1", patch).
			Return(library.Echo{Book: echo, Present: true}, http.StatusOK, nil)

		_, err := f.client.Update(f.ctx, "A1", patch)
		require.NoError(t, err)
		require.Equal(t, echo, f.client.View().Books()[0])
	})

	t.Run("missing isbn never calls the api", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "tok")
		f.seed(t)
		_, err := f.client.Update(f.ctx, "  ", patch)
		require.ErrorIs(t, err, errs.ErrMissingISBN)
		require.Equal(t, seedBooks, f.client.View().Books())
		require.Equal(t, "Missing ISBN", f.notices.Last().Text)
	})

	t.Run("failure leaves state untouched", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "tok")
		f.seed(t)
		f.svc.EXPECT().UpdateBook(gomock.Any(), "tok", "A1", patch).
			Return(library.Echo{}, 0, &errs.TransportError{Op: "PUT", Err: errors.New("")})
		_, err := f.client.Update(f.ctx, "A1", patch)
		require.Error(t, err)
		require.Equal(t, seedBooks, f.client.View().Books())
		require.Equal(t, "Failed to update", f.notices.Last().Text)
	})
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()
	f := newFixture(t, "tok")
	f.svc.EXPECT().GetBooks(f.ctx, "").Return(append([]model.Book{{ID: "3", ISBN: "A1", Title: "Dune (copy)"}}, seedBooks...), http.StatusOK, nil)
	_, err := f.client.List(f.ctx, "")
	require.NoError(t, err)

	f.svc.EXPECT().DeleteBook(gomock.Any(), "tok", "A1").Return(http.StatusNoContent, nil)
	require.NoError(t, f.client.Delete(f.ctx, "A1"))
	require.Equal(t, []string{"Emma"}, titles(f.client.View().Books()))
	require.Equal(t, notice.Success("Book deleted"), f.notices.Last())

	f.svc.EXPECT().DeleteBook(gomock.Any(), "tok", "B2").Return(http.StatusNotFound, &errs.APIError{Status: http.StatusNotFound})
	require.Error(t, f.client.Delete(f.ctx, "B2"))
	require.Equal(t, []string{"Emma"}, titles(f.client.View().Books()))
	require.Equal(t, "Request failed with status code 404", f.notices.Last().Text)
}

func TestClient_ClosedViewDiscardsResults(t *testing.T) {
	t.Parallel()
	f := newFixture(t, "tok")
	f.seed(t)

	f.svc.EXPECT().DeleteBook(gomock.Any(), "tok", "A1").DoAndReturn(
		func(context.Context, string, string) (int, error) {
			f.client.Close()
			return http.StatusNoContent, nil
		})
	require.NoError(t, f.client.Delete(f.ctx, "A1"))
	require.Equal(t, seedBooks, f.client.View().Books())
	require.Empty(t, f.notices.Notices())

	f.svc.EXPECT().GetBooks(f.ctx, "").Return(nil, http.StatusOK, nil)
	_, err := f.client.List(f.ctx, "")
	require.ErrorIs(t, err, errs.ErrViewClosed)
}

func TestClient_StaleListDropped(t *testing.T) {
	t.Parallel()
	f := newFixture(t, "")
	f.svc.EXPECT().GetBooks(f.ctx, "d").DoAndReturn(func(ctx context.Context, _ string) ([]model.Book, int, error) {
		books, err := f.client.List(ctx, "du")
		require.NoError(t, err)
		require.Len(t, books, 1)
		return seedBooks, http.StatusOK, nil
	})
	f.svc.EXPECT().GetBooks(f.ctx, "du").Return(seedBooks[:1], http.StatusOK, nil)

	_, err := f.client.List(f.ctx, "d")
	require.ErrorIs(t, err, catalog.ErrStale)
	require.Len(t, f.client.View().Books(), 1)
}

func titles(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}
