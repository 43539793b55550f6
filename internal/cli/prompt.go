package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
)

func stdinIsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func number(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("must be a number")
	}
	return nil
}

func promptLogin(req *model.LoginRequest) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&req.Email).Validate(required),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&req.Password).Validate(required),
		),
	).Run()
}

// bookFields is the editable text of a book form.
type bookFields struct {
	Title, ISBN, Author, Quantity, Available string
}

func (f bookFields) ints() (quantity, available int, err error) {
	if f.Quantity != "" {
		if quantity, err = strconv.Atoi(f.Quantity); err != nil {
			return 0, 0, errors.Wrap(err, "quantity")
		}
	}
	if f.Available != "" {
		if available, err = strconv.Atoi(f.Available); err != nil {
			return 0, 0, errors.Wrap(err, "available")
		}
	}
	return quantity, available, nil
}

// promptBook runs the add or edit form; withISBN is false when editing
// since the ISBN addresses the record and cannot change.
func promptBook(title string, f *bookFields, withISBN bool) error {
	fields := []huh.Field{
		huh.NewInput().Title("Title").Value(&f.Title).Validate(required),
	}
	if withISBN {
		fields = append(fields, huh.NewInput().Title("ISBN").Value(&f.ISBN).Validate(required))
	}
	fields = append(fields,
		huh.NewInput().Title("Author").Value(&f.Author).Validate(required),
		huh.NewInput().Title("Quantity").Value(&f.Quantity).Validate(number),
		huh.NewInput().Title("Available").Value(&f.Available).Validate(number),
	)
	return huh.NewForm(huh.NewGroup(fields...).Title(title)).Run()
}

func confirm(message string) (bool, error) {
	ok := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Affirmative("Delete").Negative("Cancel").Value(&ok),
	)).Run()
	return ok, err
}
