package actions

import "log/slog"

// Dispatcher runs the command bound to a chosen descriptor and applies the
// owning menu's close rule. It checks nothing beyond Disabled: an empty
// selection is forwarded and left to the collaborator.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher; a nil logger discards output
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{logger: logger}
}

// Execute invokes d's command with ctx and closes menu unless d.KeepOpen.
// Disabled entries and separators are no-ops and leave the menu as it is.
// The command's error is returned after the close rule is applied.
func (dp *Dispatcher) Execute(d Descriptor, ctx Context, menu *Menu) error {
	if !d.Selectable() {
		return nil
	}

	var err error
	if d.Command != nil {
		err = d.Command(ctx)
	}
	if err != nil {
		dp.logger.Warn("action failed", "action", d.ID, "targets", len(ctx.IDs), "error", err)
	} else {
		dp.logger.Debug("action dispatched", "action", d.ID, "targets", len(ctx.IDs), "bulk", ctx.Bulk)
	}

	if menu != nil && !d.KeepOpen {
		menu.Close()
	}
	return err
}

// Choose executes the menu entry at index
func (dp *Dispatcher) Choose(menu *Menu, index int, ctx Context) error {
	items := menu.Items()
	if index < 0 || index >= len(items) {
		return nil
	}
	return dp.Execute(items[index], ctx, menu)
}

// ChooseHighlighted executes the keyboard-highlighted entry
func (dp *Dispatcher) ChooseHighlighted(menu *Menu, ctx Context) error {
	return dp.Choose(menu, menu.Highlight(), ctx)
}
