package ferrox

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/rdppathak/ferrox/core/logger"
)

// ContentTypeJSON is the content type of every dispatcher response.
const ContentTypeJSON = "application/json"

// Response is the transport-facing result of a dispatch: a status code and a
// JSON body. Allow is populated only for 405 responses.
type Response struct {
	Status      int
	Body        []byte
	ContentType string
	Allow       []string
}

// Dispatcher resolves requests against a frozen registry and invokes the
// matched handler. It holds no per-request state and is safe for unlimited
// concurrent use; handler invocations are never serialized.
type Dispatcher struct {
	registry *Registry
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher over a frozen registry. A nil logger
// discards all output.
func NewDispatcher(registry *Registry, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch runs the full per-request pipeline: method lookup, ordered path
// match, argument preparation, handler invocation, response mapping. Every
// failure becomes a well-formed JSON response; nothing escapes to the caller
// and no request can take down the serving loop.
func (d *Dispatcher) Dispatch(method, rawPath, rawQuery string, rawBody []byte) Response {
	handler, bindings, ok := d.registry.lookup(method, rawPath)
	if !ok {
		if allow := d.registry.allowedMethods(method, rawPath); len(allow) > 0 {
			d.log.Debug("method not allowed", logger.Method(method), logger.Path(rawPath))
			return errorResponse(ErrMethodNotAllowed, allow)
		}
		d.log.Debug("no route matched", logger.Method(method), logger.Path(rawPath))
		return errorResponse(ErrRouteNotFound, nil)
	}

	pathParams := make(map[string]Value, len(bindings))
	for k, v := range bindings {
		pathParams[k] = v
	}

	var body Value
	if len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, &body); err != nil {
			d.log.Debug("undecodable request body",
				logger.Method(method), logger.Path(rawPath), logger.Error(err))
			return errorResponse(ErrMalformedBody, nil)
		}
	}

	result, err := d.invoke(handler, pathParams, parseQuery(rawQuery), body)
	if err != nil {
		return errorResponse(ErrHandlerFailure, nil)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		d.log.Error("handler result is not encodable",
			logger.Method(method), logger.Path(rawPath), logger.Error(err))
		return errorResponse(ErrHandlerFailure, nil)
	}
	return Response{Status: http.StatusOK, Body: payload, ContentType: ContentTypeJSON}
}

// invoke runs the handler with panic recovery. Error detail stays in the
// logs; the caller only ever sees a generic 500 body.
func (d *Dispatcher) invoke(h HandlerFunc, path, query, body Value) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = toError(r)
			d.log.Error("handler panic", logger.Error(err), logger.Stack())
		}
	}()
	return h(path, query, body), nil
}

// parseQuery decodes a raw query string into a flat object. Values stay
// strings and are never type-coerced; repeated keys keep their first value.
// Undecodable pairs are dropped rather than failing the request.
func parseQuery(rawQuery string) map[string]Value {
	out := make(map[string]Value)
	values, _ := url.ParseQuery(rawQuery)
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// errorResponse renders a dispatch failure as its fixed JSON response.
func errorResponse(e Error, allow []string) Response {
	payload, err := json.Marshal(e)
	if err != nil {
		payload = []byte(`{"code":"INTERNAL_ERROR","message":"Internal Server Error"}`)
	}
	return Response{Status: e.Status, Body: payload, ContentType: ContentTypeJSON, Allow: allow}
}
