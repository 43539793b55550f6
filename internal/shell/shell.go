package shell

import (
	"strings"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
)

type Route string

const (
	// Loading is shown while the session is still being restored.
	Loading       Route = "loading"
	RedirectLogin Route = "redirect_login"
	Allow         Route = "allow"
)

type Session interface {
	Restoring() bool
	Identity() *model.Identity
}

// Guard decides what a protected view shows. It never redirects while the
// session is restoring, so a persisted login does not flash the login page.
func Guard(s Session) Route {
	if s.Restoring() {
		return Loading
	}
	if !s.Identity().Authenticated() {
		return RedirectLogin
	}
	return Allow
}

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionAdd    Action = "add"
	ActionBorrow Action = "borrow"
	ActionReturn Action = "return"
)

var actions = map[role.Role][]Action{
	role.Librarian: {ActionEdit, ActionDelete},
	role.Borrower:  {ActionBorrow, ActionReturn},
}

// BookActions lists the per-book actions offered to r, in display order.
func BookActions(r role.Role) []Action {
	out := make([]Action, len(actions[r]))
	copy(out, actions[r])
	return out
}

// Allowed gates every action before a client is called. Adding a book is a
// librarian action even though it is not offered per book.
func Allowed(r role.Role, a Action) bool {
	if a == ActionAdd {
		return r == role.Librarian
	}
	for _, allowed := range actions[r] {
		if allowed == a {
			return true
		}
	}
	return false
}

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

func Navigation(r role.Role) []NavItem {
	switch r {
	case role.Librarian:
		return []NavItem{
			{Label: "Dashboard", Path: "/librarian"},
			{Label: "Manage books", Path: "/librarian/books"},
			{Label: "Borrowers", Path: "/librarian/borrowers"},
			{Label: "Add book", Path: "/librarian/books/new"},
		}
	case role.Borrower:
		return []NavItem{
			{Label: "Dashboard", Path: "/borrower"},
			{Label: "Browse books", Path: "/borrower/books"},
			{Label: "History", Path: "/borrower/history"},
		}
	default:
		return nil
	}
}

// Home is where a user of role r lands after login.
func Home(r role.Role) string {
	if nav := Navigation(r); len(nav) > 0 {
		return nav[0].Path
	}
	return "/login"
}

func Greeting(id *model.Identity, r role.Role) string {
	name := ""
	if id != nil {
		name = strings.TrimSpace(id.Profile.DisplayName())
	}
	if name == "" {
		switch r {
		case role.Borrower:
			name = "Reader"
		default:
			name = "Librarian"
		}
	}
	return "Welcome back, " + name
}

// Frame is everything a surface needs to draw the chrome around a view.
type Frame struct {
	Route      Route     `json:"route"`
	Role       role.Role `json:"role"`
	Greeting   string    `json:"greeting,omitempty"`
	Navigation []NavItem `json:"navigation"`
	Actions    []Action  `json:"actions"`
}

func Describe(s Session, resolver *role.Resolver) Frame {
	f := Frame{Route: Guard(s), Navigation: []NavItem{}, Actions: []Action{}}
	if f.Route != Allow {
		return f
	}
	id := s.Identity()
	f.Role = resolver.Resolve(id.Profile)
	f.Greeting = Greeting(id, f.Role)
	f.Navigation = Navigation(f.Role)
	f.Actions = BookActions(f.Role)
	return f
}
