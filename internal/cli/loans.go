package cli

import (
	"github.com/spf13/cobra"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

func newBorrowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <id|isbn>",
		Short: "Borrow a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.authorize(shell.ActionBorrow); err != nil {
				return err
			}
			ctx := cmd.Context()
			books, loans := e.views()
			defer books.Close()

			b, err := e.resolve(ctx, books, args[0])
			if err != nil {
				return err
			}
			return e.done(loans.Borrow(ctx, b))
		},
	}
}

func newReturnCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "return <id|isbn>",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.authorize(shell.ActionReturn); err != nil {
				return err
			}
			ctx := cmd.Context()
			books, loans := e.views()
			defer books.Close()

			b, err := e.resolve(ctx, books, args[0])
			if err != nil {
				return err
			}
			_, err = loans.Return(ctx, b)
			return e.done(err)
		},
	}
}

func newHistoryCmd(e *env) *cobra.Command {
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your borrow history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := e.authorize(""); err != nil {
				return err
			}
			books, loans := e.views()
			defer books.Close()

			list, err := loans.History(cmd.Context())
			if err != nil {
				return e.done(err)
			}
			if activeOnly {
				list = loan.Active(list)
			}
			renderHistory(e.out, list)
			return e.done(nil)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only books not yet returned")
	return cmd
}

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the view shell JSON API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return e.app.Serve()
		},
	}
}
