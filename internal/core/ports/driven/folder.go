package driven

// FolderReader gives read access to the folder being searched.
type FolderReader interface {
	// CheckFolder returns domain.ErrFolderNotFound or domain.ErrNotDirectory
	// when path cannot be searched.
	CheckFolder(path string) error

	// ListPDFs returns the PDF files directly inside folder, joined with
	// the folder path, in enumeration order. Subdirectories are not visited.
	ListPDFs(folder string) ([]string, error)
}

// TextWriter persists exported text.
type TextWriter interface {
	// WriteText creates or truncates path and writes content unchanged.
	WriteText(path, content string) error
}
