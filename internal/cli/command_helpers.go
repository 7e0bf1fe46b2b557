package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/journal"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

// CommandContext carries the resolved settings and logger into commands.
// The root command fills it in before any subcommand runs.
type CommandContext struct {
	Settings *models.Settings
	Logger   *slog.Logger

	// Clipboard replaces the system clipboard when set
	Clipboard func(string) error
}

// NewCommandContext creates a context with default settings
func NewCommandContext() *CommandContext {
	return &CommandContext{
		Settings: models.DefaultSettings(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// DataDir returns the configured data directory
func (c *CommandContext) DataDir() string {
	if c.Settings == nil || c.Settings.DataDir == "" {
		return files.DefaultDataDir
	}
	return c.Settings.DataDir
}

// ValidateProject ensures the data directory is initialized
func (c *CommandContext) ValidateProject() error {
	if err := files.CheckDataDir(c.DataDir()); err != nil {
		if errors.Is(err, files.ErrNoDataDir) {
			return fmt.Errorf("no %s directory found. Run 'inkpress init' first", c.DataDir())
		}
		return err
	}
	return nil
}

// ManuscriptSort returns the configured default manuscript order. Unknown
// fields fall back to newest first.
func (c *CommandContext) ManuscriptSort() records.SortState {
	sort := workflow.DefaultManuscriptSort
	if c.Settings == nil {
		return sort
	}
	ui := c.Settings.UI
	if _, ok := workflow.ManuscriptSchema().SortField(ui.ManuscriptSort); ok {
		sort.Field = ui.ManuscriptSort
	} else if ui.ManuscriptSort != "" {
		c.Logger.Warn("unknown manuscript sort in config, using default", "sort", ui.ManuscriptSort)
	}
	switch records.Direction(ui.ManuscriptDirection) {
	case records.Ascending, records.Descending:
		sort.Direction = records.Direction(ui.ManuscriptDirection)
	}
	return sort
}

// Session is a desk loaded from the data directory
type Session struct {
	Desk    *workflow.Desk
	Journal *journal.Journal
}

// Close releases the journal
func (s *Session) Close() error {
	if s.Journal == nil {
		return nil
	}
	return s.Journal.Close()
}

// OpenSession loads both collections into a desk that saves back to the
// data directory. With journaled set, every intent is also recorded.
func (c *CommandContext) OpenSession(journaled bool) (*Session, error) {
	if err := c.ValidateProject(); err != nil {
		return nil, err
	}
	dir := c.DataDir()

	manuscripts, err := files.ReadManuscripts(dir)
	if err != nil {
		return nil, err
	}
	users, err := files.ReadUsers(dir)
	if err != nil {
		return nil, err
	}

	opts := []workflow.DeskOption{
		workflow.WithStore(files.NewStore(dir)),
		workflow.WithLogger(c.Logger),
	}
	if c.Clipboard != nil {
		opts = append(opts, workflow.WithClipboard(c.Clipboard))
	}
	s := &Session{}
	if journaled {
		j, err := journal.Open(files.JournalPath(dir))
		if err != nil {
			return nil, err
		}
		s.Journal = j
		opts = append(opts, workflow.WithRecorder(j))
	}

	s.Desk = workflow.NewDesk(manuscripts, users, opts...)
	c.Logger.Debug("session opened", "data_dir", dir, "manuscripts", len(manuscripts), "users", len(users))
	return s, nil
}
