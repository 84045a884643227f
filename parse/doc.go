// Package parse contains the field parsers: pure functions and small
// configurable types that turn a single free-text laptop specification
// value into structured data.
//
// Two error policies coexist. Memory parsing is tolerant and
// degrades unreadable text to a zero-size "Other" entry, while clock speed
// and resolution parsing are strict and return *errors.InvalidFormatError.
package parse
