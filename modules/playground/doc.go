// Package playground exposes word generation over HTTP.
//
//	POST /generate   new words for the posted text
//	POST /convert    the posted text with every word replaced
//	GET  /health     liveness probe
//
// Requests are JSON objects:
//
//	{"text": "...", "max_passes": 1000, "max_word_length": 12,
//	 "max_word_count": 50, "selection": "indexed", "seed": 42,
//	 "format": "list", "stem_language": "english"}
//
// Only text is required. Responses use the handler.JSONResponse envelope; a
// run that produced nothing answers 422 with the error code
// "insufficient_corpus".
package playground
