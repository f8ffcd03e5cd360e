package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cliffjones/neologizer/pkg/binder"
	"github.com/cliffjones/neologizer/pkg/validator"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failure. Details lists messages per field.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON renders v as the data of a 200 response.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err, an error or an *ErrorDetail, with the status its
// type maps to. An *ErrorDetail defaults to 500 unless WithJSONStatus is
// given.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error, r.status = classify(e)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func classify(err error) (*ErrorDetail, int) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: verrs.Map(),
		}, http.StatusUnprocessableEntity
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}, httpErr.Code
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return &ErrorDetail{Code: ErrRequestEntityTooLarge.Key, Message: err.Error()}, ErrRequestEntityTooLarge.Code
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}, ErrUnsupportedMediaType.Code
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}, ErrBadRequest.Code
	}

	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}
