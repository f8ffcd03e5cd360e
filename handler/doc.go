// Package handler adapts typed request handlers to net/http and renders their
// results in a JSON envelope.
//
// A HandlerFunc receives the decoded request value and returns a Response.
// Wrap binds the request, runs decorators and renders the Response; binding
// and render failures go through the ErrorHandler, which by default answers
// with a JSON error:
//
//	type GenerateRequest struct {
//		Text string `json:"text"`
//	}
//
//	func generate(ctx context.Context, req GenerateRequest) handler.Response {
//		words, err := svc.Generate(ctx, req.Text)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(words)
//	}
//
//	r.Post("/generate", handler.Wrap(generate, handler.WithBinder[GenerateRequest](binder.JSON(0))))
//
// Every JSON body has the shape {"data": ..., "meta": ..., "error": {...}}.
// Errors are classified by type: validator.ValidationErrors become 422
// responses listing the failing fields, HTTPError values carry their own
// status and binder errors map to 400, 413 or 415.
package handler
