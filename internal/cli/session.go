package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/validate"
)

var errCredentials = errors.New("email and password are required")

func newLoginCmd(e *env) *cobra.Command {
	var req model.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Long: `Log in against the library API. Credentials come from flags, then
BOOKNEST_EMAIL and BOOKNEST_PASSWORD, then an interactive form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Email == "" {
				req.Email = os.Getenv("BOOKNEST_EMAIL")
			}
			if req.Password == "" {
				req.Password = os.Getenv("BOOKNEST_PASSWORD")
			}
			if (req.Email == "" || req.Password == "") && e.interactive() {
				if err := promptLogin(&req); err != nil {
					return err
				}
			}
			if err := validate.NewCustomValidator().Validate(req); err != nil {
				return e.report(errCredentials)
			}

			ctx := cmd.Context()
			resp, _, err := e.app.Auth.Login(ctx, req)
			if err != nil {
				e.notices.Notify(notice.Error(errs.Message(errors.Cause(err), "Login failed")))
				return e.done(err)
			}
			if err := e.app.Session.Login(ctx, resp.User, resp.Token); err != nil {
				e.app.Log.Error("persist session", zap.Error(err))
				return e.report(errors.Wrap(err, "could not save the session"))
			}
			renderFrame(e.out, shell.Describe(e.app.Session, e.app.Resolver))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.app.Session.Logout(cmd.Context()); err != nil {
				return e.report(err)
			}
			e.notices.Notify(notice.Info("logged out"))
			return e.done(nil)
		},
	}
}

func newWhoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the greeting, role and navigation for the session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f := shell.Describe(e.app.Session, e.app.Resolver)
			if f.Route != shell.Allow {
				return e.report(errs.ErrUnauthenticated)
			}
			renderFrame(e.out, f)
			return nil
		},
	}
}
