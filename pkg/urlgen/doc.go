// Package urlgen builds link URLs from named chi routes.
//
// Routes are registered on a chi router under a name. Links then refer to the
// name instead of repeating the pattern:
//
//	routes := urlgen.New(urlgen.WithBasePath("/app"))
//	routes.HandleFunc("order.show", http.MethodGet, "/orders/{id:[0-9]+}", showOrder)
//
//	u, err := routes.URL(urlgen.Navigation{
//	    RouteName: "order.show",
//	    Values:    map[string]any{"id": 42, "tab": "lines"},
//	})
//	// u = "/app/orders/42?tab=lines"
//
// Pattern parameters are filled from Values; values that are not pattern
// parameters become the query string in key order. A plain URL starting with
// "~/" is resolved against the base path.
package urlgen
