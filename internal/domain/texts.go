package domain

// Keys of the validation texts rendered through output.T.
const (
	TextValidationRequired = "validation.required"
	TextValidationOneOf    = "validation.oneof"
	TextValidationPositive = "validation.positive"
	TextValidationInvalid  = "validation.invalid"
	TextValidationBody     = "validation.body"
)
