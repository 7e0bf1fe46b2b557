package workflow

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
)

// Action ids emitted by the table descriptors
const (
	ActionView           = "view"
	ActionEdit           = "edit"
	ActionDownload       = "download"
	ActionAssignReviewer = "assign_reviewer"
	ActionUpdateStatus   = "update_status"
	ActionReject         = "reject"
	ActionExport         = "export"
	ActionDelete         = "delete"
	ActionActivate       = "activate"
	ActionSuspend        = "suspend"
	ActionResetPassword  = "reset_password"
)

// Intent argument names
const (
	ArgStatus   = "status"
	ArgReviewer = "reviewer"
)

var (
	ErrUnknownRecord = errors.New("no matching record")
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingArg    = errors.New("missing argument")
)

// Result describes what applying an intent did
type Result struct {
	Table    string
	ActionID string
	Affected int
	Message  string
	// Changed is false for intents that leave the collections untouched
	Changed bool
}

// Recorder receives every intent the desk handles
type Recorder interface {
	Record(table string, intent actions.Intent, applyErr error) error
}

// Store persists a collection after an intent changed it. removed holds
// the records a delete took out.
type Store interface {
	SaveManuscripts(current, removed []models.Manuscript) error
	SaveUsers(current, removed []models.User) error
}

// Desk holds the manuscript and user collections and applies intents to
// them. Every mutation installs a fresh slice, so collections handed out
// earlier never change underneath their holders.
type Desk struct {
	manuscripts []models.Manuscript
	users       []models.User

	recorder  Recorder
	store     Store
	logger    *slog.Logger
	clipboard func(string) error
	last      Result
}

// DeskOption configures a Desk
type DeskOption func(*Desk)

// WithRecorder journals every intent
func WithRecorder(r Recorder) DeskOption {
	return func(d *Desk) { d.recorder = r }
}

// WithStore saves every changed collection. A failed save rolls the
// change back.
func WithStore(s Store) DeskOption {
	return func(d *Desk) { d.store = s }
}

// WithLogger sets the desk logger
func WithLogger(l *slog.Logger) DeskOption {
	return func(d *Desk) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard used by export
func WithClipboard(write func(string) error) DeskOption {
	return func(d *Desk) { d.clipboard = write }
}

// NewDesk creates a desk over the given collections
func NewDesk(manuscripts []models.Manuscript, users []models.User, opts ...DeskOption) *Desk {
	d := &Desk{
		manuscripts: slices.Clone(manuscripts),
		users:       slices.Clone(users),
		logger:      slog.New(slog.DiscardHandler),
		clipboard:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Manuscripts returns the current manuscript collection
func (d *Desk) Manuscripts() []models.Manuscript { return d.manuscripts }

// Users returns the current user collection
func (d *Desk) Users() []models.User { return d.users }

// LastResult returns the result of the most recent successful intent
func (d *Desk) LastResult() Result { return d.last }

// ManuscriptEmitter routes intents to ApplyManuscript
func (d *Desk) ManuscriptEmitter() actions.Emitter {
	return actions.EmitterFunc(func(i actions.Intent) error {
		_, err := d.ApplyManuscript(i)
		return err
	})
}

// UserEmitter routes intents to ApplyUser
func (d *Desk) UserEmitter() actions.Emitter {
	return actions.EmitterFunc(func(i actions.Intent) error {
		_, err := d.ApplyUser(i)
		return err
	})
}

// Emitter routes intents for the named table
func (d *Desk) Emitter(table string) (actions.Emitter, error) {
	switch table {
	case TableManuscripts:
		return d.ManuscriptEmitter(), nil
	case TableUsers:
		return d.UserEmitter(), nil
	default:
		return nil, fmt.Errorf("unknown table %q", table)
	}
}

// ApplyManuscript applies an intent to the manuscript collection
func (d *Desk) ApplyManuscript(i actions.Intent) (Result, error) {
	before := d.manuscripts
	res, err := d.applyManuscript(i)
	if err == nil && res.Changed && d.store != nil {
		if saveErr := d.store.SaveManuscripts(d.manuscripts, missingFrom(before, d.manuscripts)); saveErr != nil {
			d.manuscripts = before
			res, err = Result{}, fmt.Errorf("failed to save manuscripts: %w", saveErr)
		}
	}
	return d.finish(TableManuscripts, i, res, err)
}

// ApplyUser applies an intent to the user collection
func (d *Desk) ApplyUser(i actions.Intent) (Result, error) {
	before := d.users
	res, err := d.applyUser(i)
	if err == nil && res.Changed && d.store != nil {
		if saveErr := d.store.SaveUsers(d.users, missingFrom(before, d.users)); saveErr != nil {
			d.users = before
			res, err = Result{}, fmt.Errorf("failed to save users: %w", saveErr)
		}
	}
	return d.finish(TableUsers, i, res, err)
}

func (d *Desk) finish(table string, i actions.Intent, res Result, err error) (Result, error) {
	res.Table = table
	res.ActionID = i.ActionID

	if d.recorder != nil {
		if recErr := d.recorder.Record(table, i, err); recErr != nil {
			d.logger.Warn("failed to journal intent", "intent", i.ID, "error", recErr)
		}
	}
	if err != nil {
		d.logger.Warn("intent rejected", "table", table, "action", i.ActionID, "targets", len(i.TargetIDs), "error", err)
		return res, err
	}

	d.logger.Info("intent applied", "table", table, "action", i.ActionID, "affected", res.Affected)
	d.last = res
	return res, nil
}

func (d *Desk) applyManuscript(i actions.Intent) (Result, error) {
	if len(i.TargetIDs) == 0 {
		return Result{Message: "No manuscripts selected"}, nil
	}
	targets := idSet(i.TargetIDs)
	matched := 0
	for _, m := range d.manuscripts {
		if targets[m.ID] {
			matched++
		}
	}
	if matched == 0 {
		return Result{}, fmt.Errorf("%s %v: %w", i.ActionID, i.TargetIDs, ErrUnknownRecord)
	}
	if matched < len(targets) {
		d.warnStale(TableManuscripts, i, records.StaleIDs(records.NewSelection(i.TargetIDs...), d.manuscripts))
	}

	switch i.ActionID {
	case ActionView, ActionDownload:
		return Result{Affected: matched, Message: fmt.Sprintf("%s requested for %d manuscript(s)", i.ActionID, matched)}, nil

	case ActionUpdateStatus:
		if i.Arg(ArgStatus) == "" {
			return Result{}, fmt.Errorf("%s: %w %q", i.ActionID, ErrMissingArg, ArgStatus)
		}
		status, err := models.ManuscriptStatuses.Validate(i.Arg(ArgStatus))
		if err != nil {
			return Result{}, fmt.Errorf("status %q: %w", i.Arg(ArgStatus), err)
		}
		d.manuscripts = mapMatching(d.manuscripts, targets, func(m models.Manuscript) models.Manuscript {
			m.Status = status
			return m
		})
		label := models.ManuscriptStatuses.Lookup(status).Label
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("%d manuscript(s) marked %s", matched, label)}, nil

	case ActionAssignReviewer:
		reviewer := i.Arg(ArgReviewer)
		if reviewer == "" {
			return Result{}, fmt.Errorf("%s: %w %q", i.ActionID, ErrMissingArg, ArgReviewer)
		}
		d.manuscripts = mapMatching(d.manuscripts, targets, func(m models.Manuscript) models.Manuscript {
			m.Reviewer = reviewer
			if m.Status == models.StatusSubmitted {
				m.Status = models.StatusUnderReview
			}
			return m
		})
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("%s assigned to %d manuscript(s)", reviewer, matched)}, nil

	case ActionExport:
		selected := filterMatching(d.manuscripts, targets)
		if err := d.export(models.ManuscriptFile{Manuscripts: selected}); err != nil {
			return Result{}, err
		}
		return Result{Affected: matched, Message: fmt.Sprintf("Copied %d manuscript(s) to clipboard", matched)}, nil

	case ActionDelete:
		d.manuscripts = slices.DeleteFunc(slices.Clone(d.manuscripts), func(m models.Manuscript) bool { return targets[m.ID] })
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("Deleted %d manuscript(s)", matched)}, nil
	}

	return Result{}, fmt.Errorf("%q on manuscripts: %w", i.ActionID, ErrUnknownAction)
}

func (d *Desk) applyUser(i actions.Intent) (Result, error) {
	if len(i.TargetIDs) == 0 {
		return Result{Message: "No users selected"}, nil
	}
	targets := idSet(i.TargetIDs)
	matched := 0
	for _, u := range d.users {
		if targets[u.ID] {
			matched++
		}
	}
	if matched == 0 {
		return Result{}, fmt.Errorf("%s %v: %w", i.ActionID, i.TargetIDs, ErrUnknownRecord)
	}
	if matched < len(targets) {
		d.warnStale(TableUsers, i, records.StaleIDs(records.NewSelection(i.TargetIDs...), d.users))
	}

	setStatus := func(status string) {
		d.users = mapMatching(d.users, targets, func(u models.User) models.User {
			u.Status = status
			return u
		})
	}

	switch i.ActionID {
	case ActionView, ActionEdit:
		return Result{Affected: matched, Message: fmt.Sprintf("%s requested for %d user(s)", i.ActionID, matched)}, nil

	case ActionResetPassword:
		return Result{Affected: matched, Message: fmt.Sprintf("Password reset sent to %d user(s)", matched)}, nil

	case ActionActivate:
		setStatus(models.UserActive)
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("Activated %d user(s)", matched)}, nil

	case ActionSuspend:
		setStatus(models.UserSuspended)
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("Suspended %d user(s)", matched)}, nil

	case ActionExport:
		selected := filterMatching(d.users, targets)
		if err := d.export(models.UserFile{Users: selected}); err != nil {
			return Result{}, err
		}
		return Result{Affected: matched, Message: fmt.Sprintf("Copied %d user(s) to clipboard", matched)}, nil

	case ActionDelete:
		d.users = slices.DeleteFunc(slices.Clone(d.users), func(u models.User) bool { return targets[u.ID] })
		return Result{Affected: matched, Changed: true, Message: fmt.Sprintf("Deleted %d user(s)", matched)}, nil
	}

	return Result{}, fmt.Errorf("%q on users: %w", i.ActionID, ErrUnknownAction)
}

// warnStale logs targets that no longer match a record; the intent still
// applies to the rest
func (d *Desk) warnStale(table string, i actions.Intent, stale []string) {
	d.logger.Warn("intent targets missing records", "table", table, "action", i.ActionID, "intent", i.ID, "stale", stale)
}

// MissingArg names the argument an intent still needs before it can be
// applied, or "" when it is complete
func MissingArg(i actions.Intent) string {
	switch {
	case i.ActionID == ActionUpdateStatus && i.Arg(ArgStatus) == "":
		return ArgStatus
	case i.ActionID == ActionAssignReviewer && i.Arg(ArgReviewer) == "":
		return ArgReviewer
	}
	return ""
}

// NeedsConfirmation reports whether an intent is irreversible
func NeedsConfirmation(i actions.Intent) bool {
	return i.ActionID == ActionDelete && len(i.TargetIDs) > 0
}

// WithArg returns a copy of i carrying one more argument
func WithArg(i actions.Intent, name, value string) actions.Intent {
	args := make(map[string]string, len(i.Args)+1)
	for k, v := range i.Args {
		args[k] = v
	}
	args[name] = value
	i.Args = args
	return i
}

func (d *Desk) export(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if d.clipboard == nil {
		return nil
	}
	if err := d.clipboard(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

type identified interface {
	RecordID() string
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// mapMatching returns a new slice with fn applied to targeted records
func mapMatching[T identified](in []T, targets map[string]bool, fn func(T) T) []T {
	out := make([]T, len(in))
	for i, r := range in {
		if targets[r.RecordID()] {
			r = fn(r)
		}
		out[i] = r
	}
	return out
}

func filterMatching[T identified](in []T, targets map[string]bool) []T {
	var out []T
	for _, r := range in {
		if targets[r.RecordID()] {
			out = append(out, r)
		}
	}
	return out
}

// missingFrom returns the records of before that after no longer holds
func missingFrom[T identified](before, after []T) []T {
	kept := make(map[string]bool, len(after))
	for _, r := range after {
		kept[r.RecordID()] = true
	}
	var out []T
	for _, r := range before {
		if !kept[r.RecordID()] {
			out = append(out, r)
		}
	}
	return out
}
