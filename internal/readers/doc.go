// Package readers provides the per-format text extraction boundary.
//
// Each subpackage is a "file in, plain text out" black box for one
// format family. The registry dispatches on file extension and converts
// reader errors into an explicit failed result, so no reader error ever
// propagates into the pipeline as a fault.
package readers
