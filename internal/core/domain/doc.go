// Package domain defines the core business entities for ocrr.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchRequest: A folder, an ordered term list and a case flag
//   - DocumentResult: A PDF whose OCR text matched at least one term
//   - Progress: The (completed, total) pair reported during a run
//   - Bitmap: A rasterised page as row-major RGB bytes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
