// Package wire holds the FlatBuffers-generated request/response schema.
//
// Regenerate after editing the schema files:
//
//go:generate flatc --go --go-namespace wire --go-module-name github.com/standardbeagle/daylight/internal -o .. ../../schema/common.fbs ../../schema/html.fbs ../../schema/spans.fbs
package wire
