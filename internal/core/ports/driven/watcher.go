package driven

import "context"

// FolderWatcher reports changes to the PDFs of a folder.
type FolderWatcher interface {
	// Watch calls onChange after PDFs in folder are created, written,
	// removed or renamed. Bursts of events are coalesced.
	// It blocks until ctx is done.
	Watch(ctx context.Context, folder string, onChange func()) error
}
