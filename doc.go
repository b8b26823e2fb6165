// Package sqltypes implements nullable SQL values with three-valued logic.
//
// DateTime mirrors the legacy datetime column: range 1753-01-01 to
// 9999-12-31 and time of day in 1/300 second ticks. Comparisons of
// DateTime values return TriBool, which is Unknown if any operand is Null.
package sqltypes
