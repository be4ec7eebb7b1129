package ferrox

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// methodOrder is the canonical iteration order for per-method tables, so
// derived output (Allow headers, route dumps) stays deterministic.
var methodOrder = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// supportedMethods is the set of HTTP methods a route may declare.
var supportedMethods = func() map[string]struct{} {
	m := make(map[string]struct{}, len(methodOrder))
	for _, method := range methodOrder {
		m[method] = struct{}{}
	}
	return m
}()

// Collector accumulates route descriptors during process init. It is the
// explicit registration list standing in for attribute-style declaration:
// call sites append descriptors in declaration order, and the server drains
// the collector exactly once when it builds the frozen registry.
//
// Declaring a route after the drain is a programming error and panics, the
// same class of failure as declaring a route with an unknown method.
type Collector struct {
	mu          sync.Mutex
	frozen      bool
	descriptors []RouteDescriptor
}

// NewCollector creates an empty route collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Handle declares a route for an explicit HTTP method.
func (c *Collector) Handle(method, template string, handler HandlerFunc) {
	method = strings.ToUpper(method)
	if _, ok := supportedMethods[method]; !ok {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	if handler == nil {
		panic(fmt.Errorf("%w: %s %q", ErrNilHandler, method, template))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		panic(fmt.Errorf("%w: cannot declare %s %q after the registry is built", ErrFrozen, method, template))
	}
	c.descriptors = append(c.descriptors, RouteDescriptor{
		Method:   method,
		Template: template,
		Handler:  handler,
	})
}

// Get declares a route for GET requests.
func (c *Collector) Get(template string, handler HandlerFunc) {
	c.Handle(http.MethodGet, template, handler)
}

// Post declares a route for POST requests.
func (c *Collector) Post(template string, handler HandlerFunc) {
	c.Handle(http.MethodPost, template, handler)
}

// Put declares a route for PUT requests.
func (c *Collector) Put(template string, handler HandlerFunc) {
	c.Handle(http.MethodPut, template, handler)
}

// Patch declares a route for PATCH requests.
func (c *Collector) Patch(template string, handler HandlerFunc) {
	c.Handle(http.MethodPatch, template, handler)
}

// Delete declares a route for DELETE requests.
func (c *Collector) Delete(template string, handler HandlerFunc) {
	c.Handle(http.MethodDelete, template, handler)
}

// Head declares a route for HEAD requests.
func (c *Collector) Head(template string, handler HandlerFunc) {
	c.Handle(http.MethodHead, template, handler)
}

// Options declares a route for OPTIONS requests.
func (c *Collector) Options(template string, handler HandlerFunc) {
	c.Handle(http.MethodOptions, template, handler)
}

// Drain freezes the collector and returns the declared descriptors in
// declaration order. Later calls return the same frozen sequence.
func (c *Collector) Drain() []RouteDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true

	out := make([]RouteDescriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// DefaultCollector backs the package-level declaration functions, mirroring
// the process-global declaration model: routes declared anywhere before
// server start all land in one table.
var DefaultCollector = NewCollector()

// Get declares a GET route on the default collector.
func Get(template string, handler HandlerFunc) { DefaultCollector.Get(template, handler) }

// Post declares a POST route on the default collector.
func Post(template string, handler HandlerFunc) { DefaultCollector.Post(template, handler) }

// Put declares a PUT route on the default collector.
func Put(template string, handler HandlerFunc) { DefaultCollector.Put(template, handler) }

// Patch declares a PATCH route on the default collector.
func Patch(template string, handler HandlerFunc) { DefaultCollector.Patch(template, handler) }

// Delete declares a DELETE route on the default collector.
func Delete(template string, handler HandlerFunc) { DefaultCollector.Delete(template, handler) }

// Head declares a HEAD route on the default collector.
func Head(template string, handler HandlerFunc) { DefaultCollector.Head(template, handler) }

// Options declares an OPTIONS route on the default collector.
func Options(template string, handler HandlerFunc) { DefaultCollector.Options(template, handler) }

// Handle declares a route for an explicit method on the default collector.
func Handle(method, template string, handler HandlerFunc) {
	DefaultCollector.Handle(method, template, handler)
}
