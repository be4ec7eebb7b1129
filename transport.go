package ferrox

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rdppathak/ferrox/core/logger"
)

// maxBodyBytes caps the request body read by the transport adapter (1 MB).
const maxBodyBytes = 1 << 20

// transport adapts net/http to the dispatcher. It extracts the method, path,
// raw query and body bytes from the request, hands them to Dispatch, and
// writes the resulting status and JSON body back to the wire.
//
// A dropped connection does not abort a running handler; the handler runs to
// completion and its result is discarded by net/http.
type transport struct {
	dispatcher *Dispatcher
	log        *slog.Logger
}

func (t *transport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeResponse(w, errorResponse(ErrMalformedBody.WithMessage("failed to read request body"), nil))
		return
	}
	if len(body) > maxBodyBytes {
		writeResponse(w, errorResponse(ErrMalformedBody.WithMessage("request body too large"), nil))
		return
	}

	resp := t.dispatcher.Dispatch(r.Method, path, r.URL.RawQuery, body)
	writeResponse(w, resp)

	t.log.Info("request completed",
		logger.RequestID(requestID),
		logger.Method(r.Method),
		logger.Path(path),
		logger.StatusCode(resp.Status),
		logger.Elapsed(start),
	)
}

// writeResponse writes a dispatcher response onto the wire.
func writeResponse(w http.ResponseWriter, resp Response) {
	if len(resp.Allow) > 0 {
		w.Header().Set("Allow", strings.Join(resp.Allow, ", "))
	}
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
