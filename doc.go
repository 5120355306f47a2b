// Package ssf parses Excel/ECMA-376 number-format codes and renders values
// against them the way Excel itself would display them in a cell: digit
// placeholders, thousands grouping, percent and scientific notation,
// fractions, and the full date/time token set, including the inherited
// 1900 leap-year bug and the 1904 date system.
//
// # Quick start
//
//	f, err := ssf.Parse("#,##0.00;[Red]-#,##0.00")
//	if err != nil { ... }
//
//	f.Format(1234.5, ssf.DefaultOptions())  // "1,234.50"
//	f.Format(-1234.5, ssf.DefaultOptions()) // "-1,234.50"
//
// Callers that only have the raw format string and don't want to manage a
// *[Format] themselves can use [FormatValue], which parses through a
// bounded, shared cache:
//
//	out, err := ssf.FormatValue(44197, "yyyy-mm-dd", ssf.DefaultOptions())
//
// # Values
//
// Format accepts numbers (any numeric type, via [github.com/spf13/cast]),
// strings, bools, nil, and [github.com/go-chrono/chrono.LocalDate] /
// [github.com/go-chrono/chrono.LocalDateTime], which it converts to an
// Excel serial under the Options' [DateSystem] before rendering.
//
// # Errors
//
// [Format.Format] never fails: a value the selected section can't render
// (an out-of-range date serial, a nil or unconvertible value, a
// non-finite number) renders as the empty string. [Format.TryFormat]
// reports the same cases as a *[FormatError].
package ssf
