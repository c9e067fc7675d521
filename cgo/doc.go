// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - tesseract: in-process Tesseract OCR via gosseract
package cgo
