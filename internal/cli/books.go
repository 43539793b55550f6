package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

func newBooksCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "List and manage the catalog",
	}
	cmd.AddCommand(
		newBooksListCmd(e),
		newBooksSearchCmd(e),
		newBooksAddCmd(e),
		newBooksEditCmd(e),
		newBooksDeleteCmd(e),
	)
	return cmd
}

// listBooks is a public read; it needs no session.
func (e *env) listBooks(ctx context.Context, query string) error {
	books, _ := e.views()
	defer books.Close()

	list, err := books.List(ctx, query)
	if err != nil {
		return e.done(err)
	}
	renderBooks(e.out, list)
	return e.done(nil)
}

func newBooksListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.listBooks(cmd.Context(), "")
		},
	}
}

func newBooksSearchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title, author or ISBN",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.listBooks(cmd.Context(), strings.Join(args, " "))
		},
	}
}

// resolve loads the catalog into books' view and picks ref by record id or ISBN.
func (e *env) resolve(ctx context.Context, books *catalog.Client, ref string) (model.Book, error) {
	list, err := books.List(ctx, "")
	if err != nil {
		return model.Book{}, e.done(err)
	}
	b, ok := catalog.Find(list, ref)
	if !ok {
		return model.Book{}, e.report(errors.Errorf("no book matches %q", ref))
	}
	return b, nil
}

func newBooksAddCmd(e *env) *cobra.Command {
	var f bookFields
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := e.authorize(shell.ActionAdd); err != nil {
				return err
			}
			if (f.Title == "" || f.ISBN == "" || f.Author == "") && e.interactive() {
				if err := promptBook("Add book", &f, true); err != nil {
					return err
				}
			}
			quantity, available, err := f.ints()
			if err != nil {
				return e.report(err)
			}
			if !cmd.Flags().Changed("available") && f.Available == "" {
				available = quantity
			}

			books, _ := e.views()
			defer books.Close()
			b, err := books.Create(cmd.Context(), model.BookDraft{
				Title:          strings.TrimSpace(f.Title),
				ISBN:           f.ISBN,
				Author:         strings.TrimSpace(f.Author),
				Quantity:       quantity,
				AvailableBooks: available,
			})
			if err != nil {
				return e.done(err)
			}
			renderBook(e.out, b)
			return e.done(nil)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Title, "title", "", "book title")
	fl.StringVar(&f.ISBN, "isbn", "", "ISBN")
	fl.StringVar(&f.Author, "author", "", "author")
	fl.StringVar(&f.Quantity, "quantity", "", "copies owned")
	fl.StringVar(&f.Available, "available", "", "copies on the shelf (defaults to quantity)")
	return cmd
}

func newBooksEditCmd(e *env) *cobra.Command {
	var f bookFields
	cmd := &cobra.Command{
		Use:   "edit <id|isbn>",
		Short: "Edit a book; unset fields keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.authorize(shell.ActionEdit); err != nil {
				return err
			}
			ctx := cmd.Context()
			books, _ := e.views()
			defer books.Close()

			b, err := e.resolve(ctx, books, args[0])
			if err != nil {
				return err
			}
			patch := catalog.EditForm(b)
			seed := bookFields{
				Title:     patch.Title,
				Author:    patch.Author,
				Quantity:  strconv.Itoa(patch.Quantity),
				Available: strconv.Itoa(patch.AvailableBooks),
			}
			fl := cmd.Flags()
			changed := fl.Changed("title") || fl.Changed("author") ||
				fl.Changed("quantity") || fl.Changed("available")
			if fl.Changed("title") {
				seed.Title = f.Title
			}
			if fl.Changed("author") {
				seed.Author = f.Author
			}
			if fl.Changed("quantity") {
				seed.Quantity = f.Quantity
			}
			if fl.Changed("available") {
				seed.Available = f.Available
			}
			if !changed && e.interactive() {
				if err := promptBook("Edit "+b.Title, &seed, false); err != nil {
					return err
				}
			}
			quantity, available, err := seed.ints()
			if err != nil {
				return e.report(err)
			}
			patch.Title = strings.TrimSpace(seed.Title)
			patch.Author = strings.TrimSpace(seed.Author)
			patch.Quantity = quantity
			patch.AvailableBooks = available

			updated, err := books.Update(ctx, b.ISBN, patch)
			if err != nil {
				return e.done(err)
			}
			renderBook(e.out, updated)
			return e.done(nil)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Title, "title", "", "new title")
	fl.StringVar(&f.Author, "author", "", "new author")
	fl.StringVar(&f.Quantity, "quantity", "", "new quantity")
	fl.StringVar(&f.Available, "available", "", "new available count")
	return cmd
}

func newBooksDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id|isbn>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.authorize(shell.ActionDelete); err != nil {
				return err
			}
			ctx := cmd.Context()
			books, _ := e.views()
			defer books.Close()

			b, err := e.resolve(ctx, books, args[0])
			if err != nil {
				return err
			}
			if !yes {
				if !e.interactive() {
					return e.report(errors.New("refusing to delete without --yes"))
				}
				ok, err := confirm("Delete " + b.Title + "?")
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			if err := books.Delete(ctx, b.ISBN); err != nil {
				return e.done(err)
			}
			return e.done(nil)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}
