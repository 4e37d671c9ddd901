// Package form holds the live state of a compiled form: one FieldState per
// field, rule evaluation on every edit, touched tracking, multiselect toggling,
// reset to defaults and submission. A Form is single-owner; callers that share
// one across goroutines must serialise access (pkg/session does).
package form
