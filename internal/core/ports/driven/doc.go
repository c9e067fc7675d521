// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FolderReader: Checks the selected folder and enumerates its PDFs
//   - Renderer: Rasterises the pages of one PDF (poppler)
//   - OCREngine: Recognises text in one page bitmap (tesseract)
//   - TextWriter: Writes exported result text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FolderWatcher: Notifies about PDF changes. Without it, watch mode is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
