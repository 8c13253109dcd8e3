package v1handler

import (
	"drills/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// MaxBodyBytes bounds how much of a POST /v1/duplicates body is read.
const MaxBodyBytes = 1 << 20

// Duplicates handles POST /v1/duplicates with body {"values":[...]}.
func (h Handler) Duplicates(r *http.Request) (*jx.Encoder, error) {
	values, err := decodeValues(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return nil, err
	}

	dup := h.deps.Service.ContainsDuplicate(r.Context(), values)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("values", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, v := range values {
					e.Int64(v)
				}
			})
		})
		e.Field("containsDuplicate", func(e *jx.Encoder) { e.Bool(dup) })
	})

	return &e, nil
}

// Binary handles GET /v1/binary?n=.
func (h Handler) Binary(r *http.Request) (*jx.Encoder, error) {
	raw := r.URL.Query().Get("n")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "query parameter n must be a non-negative integer")
	}

	digits := h.deps.Service.Binary(r.Context(), n)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("n", func(e *jx.Encoder) { e.UInt64(n) })
		e.Field("binary", func(e *jx.Encoder) { e.Str(digits) })
	})

	return &e, nil
}

// Parity handles GET /v1/parity?n=.
func (h Handler) Parity(r *http.Request) (*jx.Encoder, error) {
	n, err := queryInt(r, "n")
	if err != nil {
		return nil, err
	}

	even := h.deps.Service.IsEven(r.Context(), n)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("n", func(e *jx.Encoder) { e.Int64(n) })
		e.Field("even", func(e *jx.Encoder) { e.Bool(even) })
	})

	return &e, nil
}

// Divide handles GET /v1/divide?a=&b=.
func (h Handler) Divide(r *http.Request) (*jx.Encoder, error) {
	a, err := queryInt(r, "a")
	if err != nil {
		return nil, err
	}
	b, err := queryInt(r, "b")
	if err != nil {
		return nil, err
	}

	q, err := h.deps.Service.Divide(r.Context(), a, b)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("a", func(e *jx.Encoder) { e.Int64(a) })
		e.Field("b", func(e *jx.Encoder) { e.Int64(b) })
		e.Field("floor", func(e *jx.Encoder) { e.Int64(q.Floor) })
		e.Field("ceil", func(e *jx.Encoder) { e.Int64(q.Ceil) })
	})

	return &e, nil
}

func queryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "query parameter %s must be an integer", name)
	}

	return v, nil
}

// decodeValues reads {"values":[...]}; unknown fields are ignored and a
// missing "values" is rejected.
func decodeValues(body io.Reader) ([]int64, error) {
	var (
		values []int64
		seen   bool
	)

	d := jx.Decode(body, 512)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "values" {
			return d.Skip()
		}
		seen = true

		return d.Arr(func(d *jx.Decoder) error {
			v, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "values")
			}
			values = append(values, v)

			return nil
		})
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	// Skip reports io.EOF only when nothing but whitespace follows the object.
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid request body: data after the closing brace")
	}
	if !seen {
		return nil, serrors.With(serrors.ErrBadRequest, "field values is required")
	}
	if values == nil {
		values = []int64{}
	}

	return values, nil
}
