package internal

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
)

// InputList renders a ul of checkboxes or radio buttons, one per item,
// each wrapped in its label:
//
//	<ul id="Tags" class="checkbox-list">
//	  <li><label><input type="checkbox" name="Tags" value="go" checked="checked"> Go</label></li>
//	</ul>
type InputList struct {
	Builder[*InputList]
	itemSource
	inputType   InputType
	listClass   string
	itemAttrs   *attrs.Store
	labelAttrs  *attrs.Store
	inputAttrs  *attrs.Store
	dataFields  map[string]string
	selected    []any
	hasSelected bool
}

// CheckBoxList creates a list of checkboxes for name. Several items may be checked.
func (h *Helper) CheckBoxList(name string) *InputList {
	return h.inputList(name, InputCheckbox)
}

// RadioButtonList creates a list of radio buttons for name. At most one item is checked.
func (h *Helper) RadioButtonList(name string) *InputList {
	return h.inputList(name, InputRadio)
}

func (h *Helper) inputList(name string, t InputType) *InputList {
	l := &InputList{
		inputType:  t,
		itemAttrs:  attrs.New(),
		labelAttrs: attrs.New(),
		inputAttrs: attrs.New(),
		dataFields: make(map[string]string),
	}
	l.init(l, h, string(t)+"-list", name)
	l.fail(validateName(name))
	return l
}

// Items sets the item source. It accepts the same sources as DropDownList.Items.
func (l *InputList) Items(source any) *InputList {
	l.source = source
	return l
}

// DataValueField sets the path, relative to each item, of the input value.
func (l *InputList) DataValueField(path string) *InputList {
	l.valueField = path
	return l
}

// DataTextField sets the path, relative to each item, of the label text.
func (l *InputList) DataTextField(path string) *InputList {
	l.textField = path
	return l
}

// DataField adds a data-<key> attribute to each input and label, read from
// path relative to the item. Items where path does not resolve get no attribute.
func (l *InputList) DataField(key, path string) *InputList {
	if key != "" && path != "" {
		l.dataFields[key] = path
	}
	return l
}

// ValueFormat sets the format of input values.
func (l *InputList) ValueFormat(format string) *InputList {
	l.valueFormat = format
	return l
}

// TextFormat sets the format of label texts.
func (l *InputList) TextFormat(format string) *InputList {
	l.textFormat = format
	return l
}

// Selected sets the checked values explicitly, overriding model state and the model.
func (l *InputList) Selected(values ...any) *InputList {
	l.selected = values
	l.hasSelected = true
	return l
}

// ListClass replaces the default list class, "checkbox-list" or "radio-list".
func (l *InputList) ListClass(class string) *InputList {
	l.listClass = class
	return l
}

// ItemClass adds CSS classes to each li.
func (l *InputList) ItemClass(names ...string) *InputList {
	l.itemAttrs.AddClass(names...)
	return l
}

// LabelClass adds CSS classes to each label.
func (l *InputList) LabelClass(names ...string) *InputList {
	l.labelAttrs.AddClass(names...)
	return l
}

// InputClass adds CSS classes to each input.
func (l *InputList) InputClass(names ...string) *InputList {
	l.inputAttrs.AddClass(names...)
	return l
}

// ItemAttrs sets attributes on each li from a bag.
func (l *InputList) ItemAttrs(bag any) *InputList {
	l.fail(l.itemAttrs.SetMany(bag))
	return l
}

// LabelAttrs sets attributes on each label from a bag.
func (l *InputList) LabelAttrs(bag any) *InputList {
	l.fail(l.labelAttrs.SetMany(bag))
	return l
}

// InputAttrs sets attributes on each input from a bag.
func (l *InputList) InputAttrs(bag any) *InputList {
	l.fail(l.inputAttrs.SetMany(bag))
	return l
}

// Render implements templ.Component.
//
// Inputs are checked when their value matches, in order: Selected, the
// attempted values in model state, the model value. When the principal
// cannot read the field nothing is checked; when it cannot write, every
// input is disabled.
func (l *InputList) Render(ctx context.Context, w io.Writer) error {
	if err := l.Err(); err != nil {
		return err
	}
	ctx = l.logContext(ctx)

	opts, err := l.options(l.h.resolver)
	if err != nil {
		return err
	}

	f := l.h.field(ctx, l.name)
	a, read, write := l.prepare(ctx)
	if id := l.h.ID(l.name); id != "" {
		setDefault(a, "id", id)
	}
	if l.listClass != "" {
		a.AddClass(l.listClass)
	} else {
		a.AddClass(string(l.inputType) + "-list")
	}
	if f.hasErrors {
		a.AddClass(InputValidationErrorClass)
	}

	if read {
		l.markChecked(opts, f)
	}
	required := l.h.ensureValidations && l.inputType == InputRadio && f.descriptor.Required

	var inner strings.Builder
	for _, o := range opts {
		if err := l.writeItem(ctx, &inner, o, write, required); err != nil {
			return err
		}
	}
	return writeElement(ctx, w, "ul", a, inner.String())
}

func (l *InputList) markChecked(opts []option, f field) {
	multiple := l.inputType == InputCheckbox
	var explicit any = l.selected
	if !multiple && len(l.selected) > 0 {
		explicit = l.selected[0]
	}
	raws, strs, ok := l.selection(f, explicit, l.hasSelected, multiple)
	if !ok {
		return
	}
	for i := range opts {
		opts[i].Selected = matches(opts[i], raws, strs)
	}
	if !multiple {
		keepFirstSelected(opts)
	}
}

func (l *InputList) writeItem(ctx context.Context, w io.Writer, o option, write, required bool) error {
	data, err := l.data(o)
	if err != nil {
		return err
	}

	input := l.inputAttrs.Clone()
	input.SetString("type", string(l.inputType))
	input.SetString("name", l.name)
	input.SetString("value", o.Value)
	if o.Selected {
		input.SetString("checked", "checked")
	}
	if required {
		setDefault(input, "required", "required")
	}
	if !write || o.Disabled {
		input.SetString("disabled", "disabled")
	}
	label := l.labelAttrs.Clone()
	for _, d := range data {
		if err := input.Data(d.key, d.value); err != nil {
			return err
		}
		if err := label.Data(d.key, d.value); err != nil {
			return err
		}
	}

	if err := writeOpen(ctx, w, "li", l.itemAttrs); err != nil {
		return err
	}
	if err := writeOpen(ctx, w, "label", label); err != nil {
		return err
	}
	if err := writeElement(ctx, w, "input", input, ""); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "+templ.EscapeString(o.Text)); err != nil {
		return err
	}
	if err := writeClose(w, "label"); err != nil {
		return err
	}
	return writeClose(w, "li")
}

type dataValue struct {
	key   string
	value any
}

// data resolves the data fields of one item, ordered by key.
func (l *InputList) data(o option) ([]dataValue, error) {
	if o.item == nil || len(l.dataFields) == 0 {
		return nil, nil
	}
	var values []dataValue
	for _, key := range slices.Sorted(maps.Keys(l.dataFields)) {
		v, err := lookup(l.h.resolver, o.item, l.dataFields[key])
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		values = append(values, dataValue{key: key, value: v})
	}
	return values, nil
}
