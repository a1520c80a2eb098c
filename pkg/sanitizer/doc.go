// Package sanitizer provides input normalization for conversational
// scheduling data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings rather than errors.
//
// Normalization includes:
//   - Expressions: Trim, collapse whitespace, lowercase, strip diacritics -
//     "  Próxima   SEGUNDA " becomes "proxima segunda"
//   - Phone numbers: Convert to E.164 format (+[country][number])
//   - Names: Collapse whitespace, trim leading/trailing spaces
package sanitizer
