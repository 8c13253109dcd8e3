package v1handler

import (
	"context"
	"drills/internal/drill"
	"drills/pkg/divide"
	"drills/pkg/logger"
	"drills/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps holds the collaborators the v1 handlers need.
type Deps struct {
	Service drill.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body and status sent for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// NewError maps err onto an HTTP status and a stable error code. Only
// unexpected failures are logged at error level.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	var (
		status   int
		fallback string
	)
	switch kind {
	case divide.ErrDivisionByZero:
		status, fallback = http.StatusBadRequest, "division by zero"
	case serrors.ErrBadRequest:
		status, fallback = http.StatusBadRequest, "bad request"
	case serrors.ErrNotFound:
		status, fallback = http.StatusNotFound, "resource not found"
	case serrors.ErrMethodNotAllowed:
		status, fallback = http.StatusMethodNotAllowed, "method not allowed"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       serrors.ErrInternal.Error(),
			Message:    "internal error",
		}
	}

	logger.Debug(ctx, "request rejected", zap.Error(err))

	return &ErrorResponse{
		StatusCode: status,
		Code:       kind.Error(),
		Message:    serrors.MessageOf(err, fallback),
	}
}

// Register mounts the v1 routes on mux. Paths under /v1/ that match no
// route answer with a NOT_FOUND error body.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("/v1/duplicates", h.route(http.MethodPost, h.Duplicates))
	mux.Handle("/v1/binary", h.route(http.MethodGet, h.Binary))
	mux.Handle("/v1/parity", h.route(http.MethodGet, h.Parity))
	mux.Handle("/v1/divide", h.route(http.MethodGet, h.Divide))
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s", r.URL.Path))
	})
}

// handlerFunc is a v1 endpoint: it returns the encoder holding the response
// body or an error to be rendered by NewError.
type handlerFunc func(r *http.Request) (*jx.Encoder, error)

func (h *Handler) route(method string, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			h.writeError(w, r, serrors.With(serrors.ErrMethodNotAllowed, "use %s", method))

			return
		}

		e, err := fn(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(r.Context(), w, http.StatusOK, e)
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
	})

	writeJSON(r.Context(), w, res.StatusCode, &e)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
