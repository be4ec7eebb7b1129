package ferrox

import (
	"fmt"
	"sort"
)

// Value is the generic structured value exchanged across the handler
// boundary: the JSON codec's object, array, string, number, bool and null
// forms.
type Value = any

// HandlerFunc is the uniform handler contract. Path parameters and query
// parameters arrive as flat objects with string values; the body arrives as
// the decoded request body, or nil when the body was empty. The returned
// value becomes the JSON body of a 200 response.
//
// Handlers run concurrently when requests overlap; shared mutable state
// inside a handler is the handler author's responsibility.
type HandlerFunc func(path, query, body Value) Value

// RouteDescriptor declares one endpoint. Descriptors are produced by the
// declaration mechanism before the server starts and consumed exactly once
// by BuildRegistry.
type RouteDescriptor struct {
	Method   string
	Template string
	Handler  HandlerFunc
}

// Route describes a registered route, for introspection and startup logging.
type Route struct {
	Method   string
	Template string
}

// routeEntry is a compiled descriptor as stored in the frozen registry.
type routeEntry struct {
	compiled    CompiledTemplate
	handler     HandlerFunc
	specificity int
}

// Registry is the frozen route table: per-method entry lists ordered by
// descending specificity, with declaration order breaking ties. A registry
// is built once before traffic is accepted and never mutated afterwards, so
// concurrent lookups need no synchronization.
type Registry struct {
	byMethod map[string][]routeEntry
	routes   []Route
}

// BuildRegistry compiles every descriptor into a frozen route table. Any
// descriptor that fails to compile aborts the whole build with an error
// naming the offending route: a broken declaration stops the process at
// startup instead of silently dropping a route.
//
// Duplicate (method, template) pairs are retained; the earlier declaration
// wins lookups through stable ordering.
func BuildRegistry(descriptors []RouteDescriptor) (*Registry, error) {
	reg := &Registry{
		byMethod: make(map[string][]routeEntry),
		routes:   make([]Route, 0, len(descriptors)),
	}

	for _, d := range descriptors {
		if _, ok := supportedMethods[d.Method]; !ok {
			return nil, fmt.Errorf("%w: %q for route %q", ErrInvalidMethod, d.Method, d.Template)
		}
		if d.Handler == nil {
			return nil, fmt.Errorf("%w: %s %q", ErrNilHandler, d.Method, d.Template)
		}

		compiled, err := CompileTemplate(d.Template)
		if err != nil {
			return nil, fmt.Errorf("route %s %q: %w", d.Method, d.Template, err)
		}

		reg.byMethod[d.Method] = append(reg.byMethod[d.Method], routeEntry{
			compiled:    compiled,
			handler:     d.Handler,
			specificity: compiled.Specificity(),
		})
		reg.routes = append(reg.routes, Route{Method: d.Method, Template: d.Template})
	}

	for method := range reg.byMethod {
		entries := reg.byMethod[method]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].specificity > entries[j].specificity
		})
	}
	return reg, nil
}

// Routes returns the registered routes in declaration order.
func (reg *Registry) Routes() []Route {
	out := make([]Route, len(reg.routes))
	copy(out, reg.routes)
	return out
}

// lookup scans the method's entries in stored order and returns the first
// match. No backtracking: once a template matches structurally, it wins.
func (reg *Registry) lookup(method, path string) (HandlerFunc, map[string]string, bool) {
	for _, e := range reg.byMethod[method] {
		if params, ok := e.compiled.Match(path); ok {
			return e.handler, params, true
		}
	}
	return nil, nil, false
}

// allowedMethods returns the methods other than the given one that have an
// entry matching path, in canonical method order. A non-empty result
// distinguishes 405 from 404.
func (reg *Registry) allowedMethods(method, path string) []string {
	var allowed []string
	for _, m := range methodOrder {
		if m == method {
			continue
		}
		for _, e := range reg.byMethod[m] {
			if _, ok := e.compiled.Match(path); ok {
				allowed = append(allowed, m)
				break
			}
		}
	}
	return allowed
}
