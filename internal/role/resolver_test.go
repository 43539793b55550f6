package role_test

import (
	"testing"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func profile(t *testing.T, raw string) model.Profile {
	t.Helper()
	p, err := model.DecodeProfile([]byte(raw))
	require.NoError(t, err)
	return p
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()
	r := role.NewResolver(zap.NewNop())

	tests := []struct {
		name    string
		profile string
		want    role.Role
	}{
		{"prefixed role field", `{"role":"ROLE_BORROWER"}`, role.Borrower},
		{"type field", `{"type":"Borrower"}`, role.Borrower},
		{"userType field", `{"userType":"borrower-basic"}`, role.Borrower},
		{"roles list", `{"roles":["member","BORROWER"]}`, role.Borrower},
		{"flag", `{"isBorrower":true}`, role.Borrower},
		{"unknown field full text", `{"membership":{"kind":"Borrower"}}`, role.Borrower},
		{"librarian in list", `{"roles":["staff","LIBRARIAN"]}`, role.Librarian},
		{"admin flag", `{"isAdmin":true,"name":"Root"}`, role.Librarian},
		{"both keywords, borrower wins", `{"role":"librarian","roles":["borrower"]}`, role.Borrower},
		{"both in one value", `{"role":"librarian_and_borrower"}`, role.Borrower},
		{"no keyword falls back to librarian", `{"name":"Ada","email":"ada@example.com"}`, role.Librarian},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, r.Resolve(profile(t, tt.profile)))
		})
	}
}

func TestResolver_NilProfile(t *testing.T) {
	t.Parallel()
	r := role.NewResolver(zap.NewNop())
	require.Equal(t, role.None, r.Resolve(nil))
}

func TestResolver_MatchReportsStrategy(t *testing.T) {
	t.Parallel()
	r := role.NewResolver(zap.NewNop())

	tests := []struct {
		profile string
		want    string
	}{
		{`{"role":"ROLE_BORROWER"}`, "field"},
		{`{"roles":["borrower"]}`, "list"},
		{`{"isBorrower":true}`, "flag"},
		{`{"meta":"BORROWER account"}`, "fulltext"},
	}
	for _, tt := range tests {
		by, ok := r.Match(profile(t, tt.profile), role.Borrower)
		require.True(t, ok, tt.profile)
		require.Equal(t, tt.want, by, tt.profile)
	}
}

func TestFieldMatcher_FirstNonEmptyFieldOnly(t *testing.T) {
	t.Parallel()
	m := role.FieldMatcher{Fields: []string{"role", "type"}}
	p := model.Profile{"role": "staff", "type": "borrower"}
	require.False(t, m.Match(p, role.Borrower))

	p = model.Profile{"role": "", "type": "borrower"}
	require.True(t, m.Match(p, role.Borrower))
}

func TestFlagMatcher_RequiresBooleanTrue(t *testing.T) {
	t.Parallel()
	m := role.FlagMatcher{Flags: map[role.Role][]string{role.Borrower: {"isBorrower"}}}
	require.False(t, m.Match(model.Profile{"isBorrower": "true"}, role.Borrower))
	require.False(t, m.Match(model.Profile{"isBorrower": false}, role.Borrower))
	require.True(t, m.Match(model.Profile{"isBorrower": true}, role.Borrower))
}

func TestResolver_FailuresMeanNoMatch(t *testing.T) {
	t.Parallel()

	// channels cannot be serialized; the full-text strategy must not match or panic
	p := model.Profile{"role": make(chan int), "note": "borrower"}
	require.False(t, role.FullTextMatcher{}.Match(p, role.Borrower))

	r := role.NewResolver(zap.NewNop(), panicking{}, role.ListMatcher{Fields: []string{"roles"}})
	by, ok := r.Match(model.Profile{"roles": []any{"borrower"}}, role.Borrower)
	require.True(t, ok)
	require.Equal(t, "list", by)
}

type panicking struct{}

func (panicking) Name() string { return "panicking" }

func (panicking) Match(model.Profile, role.Role) bool { panic("boom") }
