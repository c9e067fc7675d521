package domain

const unknownDescription = "Unknown"

// OCREngineKind selects the OCR adapter.
type OCREngineKind string

// Available OCR engines.
const (
	// OCREngineTesseract runs the tesseract command-line program.
	OCREngineTesseract OCREngineKind = "tesseract"

	// OCREngineGosseract links libtesseract in-process (requires cgo).
	OCREngineGosseract OCREngineKind = "gosseract"
)

// IsValid returns true if the engine is recognised.
func (k OCREngineKind) IsValid() bool {
	switch k {
	case OCREngineTesseract, OCREngineGosseract:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k OCREngineKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the engine.
func (k OCREngineKind) Description() string {
	switch k {
	case OCREngineTesseract:
		return "Tesseract (command line)"
	case OCREngineGosseract:
		return "Tesseract (in-process, cgo)"
	default:
		return unknownDescription
	}
}

// AllOCREngines returns all available OCR engines.
func AllOCREngines() []OCREngineKind {
	return []OCREngineKind{
		OCREngineTesseract,
		OCREngineGosseract,
	}
}

// Limits for numeric settings.
const (
	MinDPI     = 36
	MaxDPI     = 1200
	MaxWorkers = 64
)

// RenderSettings configures page rasterisation.
type RenderSettings struct {
	// DPI is the rasterisation resolution.
	DPI int

	// PdftoppmPath is the pdftoppm executable name or path.
	PdftoppmPath string
}

// OCRSettings configures text recognition.
type OCRSettings struct {
	// Engine selects the OCR adapter.
	Engine OCREngineKind

	// TesseractPath is the tesseract executable name or path.
	TesseractPath string

	// Preprocess converts pages to high-contrast grayscale before OCR.
	Preprocess bool
}

// SearchSettings configures the orchestrator.
type SearchSettings struct {
	// Workers is the number of documents processed in parallel.
	// 1 processes documents strictly one after another.
	Workers int

	// CaseSensitive is the default case flag for shells.
	CaseSensitive bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Render RenderSettings
	OCR    OCRSettings
	Search SearchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// 72 DPI is the default resolution of common PDF rasterisers.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Render: RenderSettings{
			DPI:          72,
			PdftoppmPath: "pdftoppm",
		},
		OCR: OCRSettings{
			Engine:        OCREngineTesseract,
			TesseractPath: "tesseract",
			Preprocess:    false,
		},
		Search: SearchSettings{
			Workers:       1,
			CaseSensitive: false,
		},
	}
}
