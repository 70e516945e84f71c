// Package validation wraps go-playground/validator for struct validation.
//
// Configuration structs across the SDK declare constraints with
// `validate` tags and call Validate at startup; failures surface as
// *errors.AppError values with code INVALID_CONFIG.
package validation
