package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/tui"
)

func newBrowseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and search the catalog interactively; actions need a login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := e.role()
			greeting := "Book Nest catalog"
			if r != role.None {
				greeting = shell.Greeting(e.app.Session.Identity(), r)
			}
			if !e.interactive() {
				return errors.New("browse needs a terminal")
			}
			books, loans := e.views()
			defer books.Close()

			return tui.Run(cmd.Context(), tui.Deps{
				Books:    books,
				Loans:    loans,
				Notices:  e.notices,
				Role:     r,
				Greeting: greeting,
				Debounce: e.app.Config.Search.Debounce,
			})
		},
	}
}
