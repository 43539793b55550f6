package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/app"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/config"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/pkg/logger"
)

type globalFlags struct {
	configFile string
	apiURL     string
	logLevel   string
	storage    string
	dsn        string
}

// env is shared by every command of one invocation.
type env struct {
	flags globalFlags
	// newApp is replaced in tests.
	newApp func(ctx context.Context, cfg config.Config, log *zap.Logger) (*app.App, error)
	// interactive reports whether prompts may be shown.
	interactive func() bool

	app     *app.App
	notices *notice.Recorder
	out     io.Writer
}

// reportedError has already been shown to the user as a notice.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func NewRootCmd() *cobra.Command {
	e := &env{
		newApp:      app.New,
		interactive: isTerminal,
		notices:     &notice.Recorder{},
	}
	return newRootCmd(e)
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "booknest",
		Short: "Book Nest library client",
		Long: `booknest talks to the Book Nest library API.
Librarians manage the catalog; borrowers borrow and return books.
The session is kept in local storage between invocations.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  e.setup,
		PersistentPostRunE: e.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configFile, "config", "", "YAML config file")
	pf.StringVar(&e.flags.apiURL, "api-url", "", "library API base URL")
	pf.StringVar(&e.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&e.flags.storage, "storage", "", "session storage driver (sqlite3, pgx, redis, memory)")
	pf.StringVar(&e.flags.dsn, "storage-dsn", "", "session storage DSN")

	root.AddCommand(
		newLoginCmd(e),
		newLogoutCmd(e),
		newWhoamiCmd(e),
		newBooksCmd(e),
		newBorrowCmd(e),
		newReturnCmd(e),
		newHistoryCmd(e),
		newServeCmd(e),
		newBrowseCmd(e),
	)
	return root
}

// Execute runs the root command and prints any error not yet reported.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(root.ErrOrStderr(), styles.Error.Render(notice.Error(err.Error()).Text))
		}
	}
	return err
}

func (e *env) config(cmd *cobra.Command) (config.Config, error) {
	var opts []config.Option
	if e.flags.configFile != "" {
		opts = append(opts, config.WithFile(e.flags.configFile))
	}
	if e.flags.apiURL != "" {
		opts = append(opts, config.WithAPIBaseURL(e.flags.apiURL))
	}
	if e.flags.storage != "" {
		opts = append(opts, config.WithStorageDriver(e.flags.storage, e.flags.dsn))
	}
	if e.flags.logLevel != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(e.flags.logLevel)); err != nil {
			return config.Config{}, errors.Wrap(err, "log-level")
		}
		opts = append(opts, config.WithLogLevel(lvl))
	} else if cmd.Name() != "serve" {
		// Keep command output readable; serve logs at the configured level.
		opts = append(opts, config.WithLogLevel(zapcore.WarnLevel))
	}
	return config.Load(opts...)
}

func (e *env) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := e.config(cmd)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.Log, "booknest")
	a, err := e.newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	e.app = a
	e.out = cmd.OutOrStdout()
	return nil
}

func (e *env) teardown(_ *cobra.Command, _ []string) error {
	if e.app == nil {
		return nil
	}
	_ = e.app.Log.Sync()
	return e.app.Close()
}

// authorize mirrors the view shell guard for a command; action may be empty.
func (e *env) authorize(action shell.Action) (role.Role, error) {
	if shell.Guard(e.app.Session) != shell.Allow {
		return role.None, e.report(errs.ErrUnauthenticated)
	}
	r := e.role()
	if action != "" && !shell.Allowed(r, action) {
		return r, e.report(errs.ErrForbidden)
	}
	return r, nil
}

// role is the current role, None without a session.
func (e *env) role() role.Role {
	if shell.Guard(e.app.Session) != shell.Allow {
		return role.None
	}
	return e.app.Resolver.Resolve(e.app.Session.Profile())
}

func (e *env) notifier() notice.Notifier {
	return notice.Logged(e.app.Log, e.notices)
}

// views opens a catalog and a loan client sharing one projection.
func (e *env) views() (*catalog.Client, *loan.Client) {
	n := e.notifier()
	books := e.app.Catalog(n)
	return books, e.app.Loans(n, books.View())
}

// done prints pending notices; a failure already carried by a notice is
// marked reported so Execute does not print it twice.
func (e *env) done(err error) error {
	shown := renderNotices(e.out, e.notices.Drain())
	if err != nil && shown {
		return reportedError{err: err}
	}
	return err
}

// report shows err as an error notice and returns it marked reported.
func (e *env) report(err error) error {
	e.notices.Notify(notice.Error(errs.Message(err, err.Error())))
	return e.done(err)
}

func isTerminal() bool {
	return stdinIsTerminal(os.Stdin)
}
