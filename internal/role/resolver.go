package role

import (
	stdjson "encoding/json"
	"strconv"
	"strings"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"go.uber.org/zap"
)

type Role string

const (
	None      Role = ""
	Borrower  Role = "borrower"
	Librarian Role = "librarian"
)

func (r Role) String() string {
	if r == None {
		return "anonymous"
	}
	return string(r)
}

// Matcher is one detection strategy. Implementations must be pure and must
// not panic; the resolver still recovers if one does.
type Matcher interface {
	Name() string
	Match(p model.Profile, r Role) bool
}

// FieldMatcher looks at the first non-empty of Fields, lowercased, for the
// role keyword as a substring ("ROLE_BORROWER" matches borrower).
type FieldMatcher struct {
	Fields []string
}

func (FieldMatcher) Name() string { return "field" }

func (m FieldMatcher) Match(p model.Profile, r Role) bool {
	for _, f := range m.Fields {
		v, ok := p[f]
		if !ok || !truthy(v) {
			continue
		}
		return strings.Contains(strings.ToLower(scalar(v)), string(r))
	}
	return false
}

// ListMatcher checks every entry of list-valued Fields.
type ListMatcher struct {
	Fields []string
}

func (ListMatcher) Name() string { return "list" }

func (m ListMatcher) Match(p model.Profile, r Role) bool {
	for _, f := range m.Fields {
		list, ok := p[f].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if strings.Contains(strings.ToLower(scalar(item)), string(r)) {
				return true
			}
		}
	}
	return false
}

// FlagMatcher matches when any flag listed for the role is boolean true.
type FlagMatcher struct {
	Flags map[Role][]string
}

func (FlagMatcher) Name() string { return "flag" }

func (m FlagMatcher) Match(p model.Profile, r Role) bool {
	for _, f := range m.Flags[r] {
		if b, ok := p[f].(bool); ok && b {
			return true
		}
	}
	return false
}

// FullTextMatcher serializes the whole profile and searches it. It is the
// last resort for role fields nobody told us about.
type FullTextMatcher struct{}

func (FullTextMatcher) Name() string { return "fulltext" }

func (FullTextMatcher) Match(p model.Profile, r Role) bool {
	b, err := p.Encode()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(b)), string(r))
}

func DefaultMatchers() []Matcher {
	return []Matcher{
		FieldMatcher{Fields: []string{"role", "type", "userType"}},
		ListMatcher{Fields: []string{"roles"}},
		FlagMatcher{Flags: map[Role][]string{
			Borrower:  {"isBorrower"},
			Librarian: {"isLibrarian", "isAdmin"},
		}},
		FullTextMatcher{},
	}
}

type Resolver struct {
	matchers []Matcher
	log      *zap.Logger
}

func NewResolver(log *zap.Logger, matchers ...Matcher) *Resolver {
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}
	return &Resolver{matchers: matchers, log: log.Named("role")}
}

// Resolve picks exactly one role. Borrower is checked first and wins when
// both keywords match; any other authenticated profile is a librarian.
func (r *Resolver) Resolve(p model.Profile) Role {
	if p == nil {
		return None
	}
	if by, ok := r.Match(p, Borrower); ok {
		r.log.Debug("resolved", zap.Stringer("role", Borrower), zap.String("by", by))
		return Borrower
	}
	by, ok := r.Match(p, Librarian)
	if !ok {
		by = "fallback"
	}
	r.log.Debug("resolved", zap.Stringer("role", Librarian), zap.String("by", by))
	return Librarian
}

// Match runs the strategies in order and reports the first that matched.
func (r *Resolver) Match(p model.Profile, role Role) (string, bool) {
	for _, m := range r.matchers {
		if safeMatch(m, p, role) {
			return m.Name(), true
		}
	}
	return "", false
}

func safeMatch(m Matcher, p model.Profile, r Role) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return m.Match(p, r)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case stdjson.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// scalar renders strings, numbers and booleans; composite values render
// empty so they never match a keyword.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case stdjson.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
