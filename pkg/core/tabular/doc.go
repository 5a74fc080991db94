// Package tabular implements the core conversion pipeline primitives:
// delimiter detection, quoted-field parsing of delimited text into a Table,
// input decoding, and normalized CSV re-emission.
//
// The pipeline is deliberately lenient. Ragged rows are padded or truncated
// to the header width, unterminated quotes fold the remainder of the input
// into the final field, and non-UTF-8 input falls back to Windows-1252. The
// only hard failures are a missing input file, an empty input, and an
// undecodable byte stream.
package tabular
