// Package validator holds the predicates that run against the clean value of
// a mask: length checks, CPF and CNPJ check digits, time and date bounds, and
// numeric limits.
//
// Each exported helper returns a Rule: a Check closure plus translation-friendly
// error metadata. Rules are evaluated with Apply, which aggregates failures into
// ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidLength("cep", clean, 8),
//	    validator.ValidCPF("cpf", cpf),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Has("cpf"), verrs.Get("cpf"), ...
//	}
//
// Rules must be given the clean value (digits only), never the display value.
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. The package is stateless and safe for concurrent use.
package validator
