// Package ferrox turns ordinary functions into HTTP endpoints. Routes are
// declared as (method, template, handler) triples before the server starts;
// at startup every declaration is compiled into a single frozen route table,
// and incoming requests are matched against that table and dispatched with
// path parameters, query parameters and the request body pre-parsed into
// generic JSON values.
//
// Every handler has the same shape:
//
//	ferrox.Get("/users/:id", func(path, query, body ferrox.Value) ferrox.Value {
//		id := path.(map[string]any)["id"]
//		return map[string]any{"id": id}
//	})
//
//	srv := ferrox.NewServer()
//	if err := srv.Start(ctx, ":8080"); err != nil {
//		log.Fatal(err)
//	}
//
// The route table has a two-phase lifecycle: a mutable build phase while
// declarations are collected, and a frozen phase that begins before the
// first connection is accepted. Once frozen the table is read-only and safe
// for unlimited concurrent lookups. A declaration that fails to compile
// prevents the server from starting.
//
// When several templates match the same path, the one with more literal
// segments wins; ties keep declaration order. A path that matches a template
// under a different method yields 405, an unmatched path 404, an undecodable
// body 400, and a panicking handler 500. Handlers do not control status
// codes or headers.
package ferrox
