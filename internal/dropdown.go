package internal

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
)

// SelectItem is one option of a drop-down list.
type SelectItem struct {
	Value    string
	Text     string
	Group    string
	Selected bool
	Disabled bool
}

// SelectGroup is a labelled group of options.
type SelectGroup struct {
	Label    string
	Disabled bool
	Items    []SelectItem
}

// DropDownList renders a select element bound to a model field.
type DropDownList struct {
	Builder[*DropDownList]
	itemSource
	placeholder    string
	hasPlaceholder bool
	selected       any
	hasSelected    bool
	multiple       bool
}

// DropDownList creates a select for name.
//
// Options come from Items. The selected option is the one whose raw value
// equals, or whose formatted value matches, the first available of: Selected,
// the attempted value in model state, the model value.
// When the principal cannot write the field the select is disabled.
func (h *Helper) DropDownList(name string) *DropDownList {
	d := &DropDownList{}
	d.init(d, h, "select", name)
	d.fail(validateName(name))
	return d
}

// ListBox creates a multi-select for name.
func (h *Helper) ListBox(name string) *DropDownList {
	return h.DropDownList(name).Multiple()
}

// Items sets the option source: []SelectItem, []SelectGroup, map[string]string,
// or any slice, array, map or iterator of values. Values are turned into options
// with DataValueField, DataTextField and DataGroupField, or used directly.
func (d *DropDownList) Items(source any) *DropDownList {
	d.source = source
	return d
}

// DataValueField sets the path, relative to each item, of the option value.
func (d *DropDownList) DataValueField(path string) *DropDownList {
	d.valueField = path
	return d
}

// DataTextField sets the path, relative to each item, of the option text.
func (d *DropDownList) DataTextField(path string) *DropDownList {
	d.textField = path
	return d
}

// DataGroupField sets the path, relative to each item, of the option group label.
func (d *DropDownList) DataGroupField(path string) *DropDownList {
	d.groupField = path
	return d
}

// ValueFormat sets the format of option values.
func (d *DropDownList) ValueFormat(format string) *DropDownList {
	d.valueFormat = format
	return d
}

// TextFormat sets the format of option texts.
func (d *DropDownList) TextFormat(format string) *DropDownList {
	d.textFormat = format
	return d
}

// Placeholder adds a first option with an empty value.
func (d *DropDownList) Placeholder(text string) *DropDownList {
	d.placeholder = text
	d.hasPlaceholder = true
	return d
}

// Selected sets the selected value explicitly. For multi-selects it may be a slice.
func (d *DropDownList) Selected(v any) *DropDownList {
	d.selected = v
	d.hasSelected = true
	return d
}

// Multiple allows selecting several options.
func (d *DropDownList) Multiple() *DropDownList {
	d.multiple = true
	return d
}

// Required marks the select required.
func (d *DropDownList) Required() *DropDownList {
	d.attrs.SetString("required", "required")
	return d
}

// Render implements templ.Component.
func (d *DropDownList) Render(ctx context.Context, w io.Writer) error {
	if err := d.Err(); err != nil {
		return err
	}
	ctx = d.logContext(ctx)

	opts, err := d.options(d.h.resolver)
	if err != nil {
		return err
	}
	d.h.logger.DebugContext(ctx, "options bound", slog.Int("count", len(opts)))

	f := d.h.field(ctx, d.name)
	a, read, write := d.prepare(ctx)
	d.h.nameAttrs(a, d.name)
	if d.multiple {
		a.SetString("multiple", "multiple")
	}
	d.h.mergeValidation(a, f, selectType)
	if !write {
		a.SetString("disabled", "disabled")
	}
	if read {
		d.markSelected(opts, f)
	} else {
		for i := range opts {
			opts[i].Selected = false
		}
	}

	var inner strings.Builder
	if err := d.writeOptions(ctx, &inner, opts); err != nil {
		return err
	}
	return writeElement(ctx, w, "select", a, inner.String())
}

func (d *DropDownList) writeOptions(ctx context.Context, w *strings.Builder, opts []option) error {
	if d.hasPlaceholder {
		ph := attrs.New()
		ph.SetString("value", "")
		if err := writeElement(ctx, w, "option", ph, templ.EscapeString(d.h.T(d.placeholder, nil))); err != nil {
			return err
		}
	}

	// Grouped options render together at the position of the group's first option.
	written := make(map[string]bool)
	disabled := d.disabledGroups()
	for _, o := range opts {
		if o.Group == "" {
			if err := writeOption(ctx, w, o.SelectItem); err != nil {
				return err
			}
			continue
		}
		if written[o.Group] {
			continue
		}
		written[o.Group] = true

		g := attrs.New()
		g.SetString("label", o.Group)
		if disabled[o.Group] {
			g.SetString("disabled", "disabled")
		}
		if err := writeOpen(ctx, w, "optgroup", g); err != nil {
			return err
		}
		for _, member := range opts {
			if member.Group != o.Group {
				continue
			}
			if err := writeOption(ctx, w, member.SelectItem); err != nil {
				return err
			}
		}
		if err := writeClose(w, "optgroup"); err != nil {
			return err
		}
	}
	return nil
}

func writeOption(ctx context.Context, w io.Writer, item SelectItem) error {
	a := attrs.New()
	a.SetString("value", item.Value)
	if item.Selected {
		a.SetString("selected", "selected")
	}
	if item.Disabled {
		a.SetString("disabled", "disabled")
	}
	return writeElement(ctx, w, "option", a, templ.EscapeString(item.Text))
}

func (d *DropDownList) disabledGroups() map[string]bool {
	groups, ok := d.source.([]SelectGroup)
	if !ok {
		return nil
	}
	m := make(map[string]bool)
	for _, g := range groups {
		if g.Disabled {
			m[g.Label] = true
		}
	}
	return m
}

// markSelected sets Selected on options matching the current value.
// A single select keeps at most one selected option.
func (d *DropDownList) markSelected(opts []option, f field) {
	raws, strs, ok := d.selection(f, d.selected, d.hasSelected, d.multiple)
	if !ok {
		if !d.multiple {
			keepFirstSelected(opts)
		}
		return
	}

	for i := range opts {
		opts[i].Selected = matches(opts[i], raws, strs)
	}
	if !d.multiple {
		keepFirstSelected(opts)
	}
}

func keepFirstSelected(opts []option) {
	found := false
	for i := range opts {
		if opts[i].Selected {
			if found {
				opts[i].Selected = false
			}
			found = true
		}
	}
}
