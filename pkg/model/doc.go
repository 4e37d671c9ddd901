// Package model defines the compiled field model produced from a form schema.
// Each Field carries its kind, derived options, the ordered validator set and
// the default value the form state starts from. Validation rules form a closed
// set (required, email, pattern, min/max, minLength/maxLength) with typed
// parameters so evaluators never parse free-form maps. Compilers live in
// internal/model but return the types defined here.
package model
