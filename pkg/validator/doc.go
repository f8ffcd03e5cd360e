// Package validator builds declarative validation rules for request and
// configuration values.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates a list of rules and returns every failure at
// once as ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredString("text", req.Text),
//	    validator.MinNum("max_passes", req.MaxPasses, 1),
//	    validator.InList("format", req.Format, []string{"text", "list", "html"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    details := verrs.Map() // field -> messages
//	}
//
// ExtractValidationErrors and IsValidationError see through wrapped errors,
// so a ValidationErrors joined with a sentinel error is still found.
package validator
