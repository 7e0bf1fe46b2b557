// Package actions holds the contextual action menu and the dispatcher that
// turns a chosen command into an outbound intent.
package actions

// Variant controls how an entry is tinted
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
)

// Context is what a command acts on: the whole selection for bulk actions
// or a single record id for row actions
type Context struct {
	IDs  []string
	Bulk bool
}

// BulkContext builds a context over the selection ids
func BulkContext(ids []string) Context {
	return Context{IDs: ids, Bulk: true}
}

// RowContext builds a context for one record
func RowContext(id string) Context {
	return Context{IDs: []string{id}}
}

// Command is the behaviour bound to a descriptor
type Command func(Context) error

// Descriptor declares one menu entry. Declaration order is render order.
type Descriptor struct {
	ID        string
	Label     string
	Icon      string
	Variant   Variant
	Disabled  bool
	Shortcut  string
	Badge     string
	KeepOpen  bool
	Separator bool
	Command   Command
}

// Separator returns a divider entry
func Separator() Descriptor {
	return Descriptor{Separator: true}
}

// DisplayLabel returns the label, falling back to the id and then to a
// placeholder for malformed descriptors
func (d Descriptor) DisplayLabel() string {
	switch {
	case d.Label != "":
		return d.Label
	case d.ID != "":
		return d.ID
	default:
		return "(untitled)"
	}
}

// Selectable reports whether choosing the entry may run its command
func (d Descriptor) Selectable() bool {
	return !d.Separator && !d.Disabled
}

// EffectiveVariant treats an empty variant as default
func (d Descriptor) EffectiveVariant() Variant {
	if d.Variant == "" {
		return VariantDefault
	}
	return d.Variant
}
