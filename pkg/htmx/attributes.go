package htmx

import (
	"strconv"
	"strings"
)

// Attribute is a single hx-* attribute.
type Attribute struct {
	Name  string
	Value any
}

// Get issues a GET to url.
func Get(url string) Attribute { return Attribute{Name: "hx-get", Value: url} }

// Post issues a POST to url.
func Post(url string) Attribute { return Attribute{Name: "hx-post", Value: url} }

// Put issues a PUT to url.
func Put(url string) Attribute { return Attribute{Name: "hx-put", Value: url} }

// Patch issues a PATCH to url.
func Patch(url string) Attribute { return Attribute{Name: "hx-patch", Value: url} }

// Delete issues a DELETE to url.
func Delete(url string) Attribute { return Attribute{Name: "hx-delete", Value: url} }

// Target sets the element the response is swapped into.
func Target(selector string) Attribute { return Attribute{Name: "hx-target", Value: selector} }

// Select picks the part of the response to swap in.
func Select(selector string) Attribute { return Attribute{Name: "hx-select", Value: selector} }

// Include adds the values of other elements to the request.
func Include(selector string) Attribute { return Attribute{Name: "hx-include", Value: selector} }

// Indicator sets the element that gets the htmx-request class while the request is in flight.
func Indicator(selector string) Attribute { return Attribute{Name: "hx-indicator", Value: selector} }

// Confirm asks the user before issuing the request.
func Confirm(message string) Attribute { return Attribute{Name: "hx-confirm", Value: message} }

// Swap sets the swap strategy with optional modifiers.
func Swap(s SwapStrategy, modifiers ...string) Attribute {
	return Attribute{Name: "hx-swap", Value: s.With(modifiers...)}
}

// SwapOOB marks the element for an out-of-band swap.
func SwapOOB(s SwapStrategy) Attribute {
	if s == "" {
		return Attribute{Name: "hx-swap-oob", Value: "true"}
	}
	return Attribute{Name: "hx-swap-oob", Value: string(s)}
}

// Trigger sets the events that issue the request, joined with ", ".
func Trigger(events ...string) Attribute {
	return Attribute{Name: "hx-trigger", Value: strings.Join(events, ", ")}
}

// PushURL pushes the request URL, or url when given, into browser history.
func PushURL(url ...string) Attribute {
	if len(url) > 0 && url[0] != "" {
		return Attribute{Name: "hx-push-url", Value: url[0]}
	}
	return Attribute{Name: "hx-push-url", Value: "true"}
}

// Boost toggles boosting of links and forms inside the element.
func Boost(enabled bool) Attribute {
	return Attribute{Name: "hx-boost", Value: strconv.FormatBool(enabled)}
}

// Vals adds values to the request. The map is serialized to JSON.
func Vals(values map[string]any) Attribute { return Attribute{Name: "hx-vals", Value: values} }

// Headers adds request headers. The map is serialized to JSON.
func Headers(headers map[string]string) Attribute {
	return Attribute{Name: "hx-headers", Value: headers}
}
