// Package sanitizer holds the small string helpers used to clean source text
// before it reaches the pipeline and to make output safe for display.
//
// Helpers are plain functions over strings and can be chained with Apply or
// stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//		sanitizer.RemoveNullBytes,
//		sanitizer.RemoveControlChars,
//		sanitizer.NormalizeNewlines,
//	)
//	text = clean(text)
package sanitizer
