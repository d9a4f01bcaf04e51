package metadata

import (
	"strconv"
	"strings"
)

// TagProvider reads field metadata from struct tags:
//
//	display     display name
//	description help text
//	placeholder input placeholder
//	datatype    semantic type hint such as "email", "password" or "date"
//	validate    comma-separated rules: required, minlen=N, maxlen=N, min=X, max=X
//
// When Humanize is set, fields without a display tag get a display name derived
// from the field name.
type TagProvider struct {
	Humanize bool
}

// Describe implements Provider.
func (p TagProvider) Describe(t Target) FieldDescriptor {
	d := FieldDescriptor{PropertyName: t.Name, DeclaredType: t.Type}
	if t.Field == nil {
		return d
	}

	d.PropertyName = t.Field.Name
	tag := t.Field.Tag
	d.DisplayName = tag.Get("display")
	d.Description = tag.Get("description")
	d.Placeholder = tag.Get("placeholder")
	d.DataType = tag.Get("datatype")
	if d.DisplayName == "" && p.Humanize {
		d.DisplayName = Humanize(t.Field.Name)
	}

	for rule := range strings.SplitSeq(tag.Get("validate"), ",") {
		name, arg, _ := strings.Cut(strings.TrimSpace(rule), "=")
		switch name {
		case "required":
			d.Required = true
		case "maxlen":
			d.MaxLength, _ = strconv.Atoi(arg)
		case "minlen":
			d.MinLength, _ = strconv.Atoi(arg)
		case "min":
			d.Min = arg
		case "max":
			d.Max = arg
		}
	}
	return d
}
