package actions

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the outbound message emitted instead of performing a mutation
type Intent struct {
	ID        string            `json:"id" yaml:"id"`
	ActionID  string            `json:"action_id" yaml:"action_id"`
	TargetIDs []string          `json:"target_ids" yaml:"target_ids"`
	Args      map[string]string `json:"args,omitempty" yaml:"args,omitempty"`
	At        time.Time         `json:"at" yaml:"at"`
}

// NewIntent stamps a new intent. Targets are copied so later selection
// changes cannot alter an emitted intent.
func NewIntent(actionID string, targets []string, args map[string]string) Intent {
	ids := make([]string, len(targets))
	copy(ids, targets)
	return Intent{
		ID:        uuid.NewString(),
		ActionID:  actionID,
		TargetIDs: ids,
		Args:      args,
		At:        time.Now().UTC(),
	}
}

// Arg returns an argument value or ""
func (i Intent) Arg(name string) string {
	if i.Args == nil {
		return ""
	}
	return i.Args[name]
}

// Emitter delivers intents to whoever owns the mutation
type Emitter interface {
	Emit(Intent) error
}

// EmitterFunc adapts a function to Emitter
type EmitterFunc func(Intent) error

// Emit calls f
func (f EmitterFunc) Emit(i Intent) error {
	return f(i)
}

// Emit returns a command that emits actionID over the context ids
func Emit(e Emitter, actionID string, args map[string]string) Command {
	return func(ctx Context) error {
		if e == nil {
			return nil
		}
		return e.Emit(NewIntent(actionID, ctx.IDs, args))
	}
}
