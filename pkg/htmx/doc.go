// Package htmx builds hx-* attributes for controls.
//
// Each constructor returns an Attribute that a control applies with its Hx method:
//
//	h.Button("Delete").Hx(
//	    htmx.Delete("/orders/7"),
//	    htmx.Target("#orders"),
//	    htmx.Swap(htmx.SwapOuterHTML, "swap:200ms"),
//	    htmx.Confirm("Delete this order?"),
//	)
//	// <button hx-delete="/orders/7" hx-target="#orders" hx-swap="outerHTML swap:200ms" hx-confirm="Delete this order?" type="button">Delete</button>
//
// Values that are not strings, such as the map given to Vals, are serialized to
// JSON when the attribute is stored.
package htmx
