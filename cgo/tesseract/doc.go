// Package tesseract provides in-process OCR through the gosseract bindings
// to libtesseract. It implements the driven.OCREngine interface.
//
// Build requires:
//   - Tesseract and Leptonica development libraries
//   - Install via: brew install tesseract (macOS) or apt install libtesseract-dev libleptonica-dev (Linux)
//
// Without CGO the package builds a stub whose Recognize returns domain.ErrNotImplemented.
package tesseract
