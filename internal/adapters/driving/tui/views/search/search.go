// Package search provides the search view for the TUI: folder and terms
// inputs, a progress meter, the result panel and the save prompt.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/components/input"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/components/meter"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/components/results"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/components/status"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/keymap"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/messages"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/styles"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/domain"
	"github.com/Uadhikari111/OCR-Pdf/internal/core/ports/driving"
)

// DefaultExportName is offered in the save prompt.
const DefaultExportName = "results.txt"

// updateBuffer is the capacity of the worker-to-UI message channel.
const updateBuffer = 16

const (
	focusFolder = iota
	focusTerms
	fieldCount
)

// View is the single screen of the TUI.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	folder    *input.Field
	terms     *input.Field
	prompt    *input.Field
	meter     *meter.Meter
	panel     *results.Panel
	statusbar *status.Bar

	searchService driving.SearchService
	exportService driving.ExportService
	ctx           context.Context
	cancel        context.CancelFunc

	defaultCase   bool
	caseSensitive bool
	focus         int
	running       bool
	saving        bool
	updates       chan tea.Msg

	notice    string
	noticeErr bool
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	exportService driving.ExportService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		folder:        input.NewField(s, "Folder", "/path/to/pdfs"),
		terms:         input.NewField(s, "Words", "invoice, receipt"),
		prompt:        input.NewField(s, "Save to", DefaultExportName),
		meter:         meter.New(s),
		panel:         results.NewPanel(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		exportService: exportService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
	v.folder.Focus()
	return v
}

// WithContext sets the parent context for searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetCaseSensitive sets the matching mode; Clear restores it.
func (v *View) SetCaseSensitive(caseSensitive bool) {
	v.defaultCase = caseSensitive
	v.caseSensitive = caseSensitive
}

// SetFolder prefills the folder input.
func (v *View) SetFolder(folder string) {
	v.folder.SetValue(folder)
	if folder != "" {
		v.focusField(focusTerms)
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.folder.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProgressUpdated:
		v.meter.Set(msg.Progress)
		return v, v.waitForUpdate()

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ExportCompleted:
		v.handleExportCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	// Forward to the focused input (cursor blink).
	var cmd tea.Cmd
	if v.saving {
		v.prompt, cmd = v.prompt.Update(msg)
	} else {
		_, cmd = v.focused().Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.saving {
		return v.handlePromptKey(msg)
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Start):
		return v, v.start()
	case keymap.Matches(key, v.keymap.NextField):
		v.focusField((v.focus + 1) % fieldCount)
		return v, nil
	case keymap.Matches(key, v.keymap.PrevField):
		v.focusField((v.focus + fieldCount - 1) % fieldCount)
		return v, nil
	case keymap.Matches(key, v.keymap.ToggleCase):
		v.caseSensitive = !v.caseSensitive
		return v, nil
	case keymap.Matches(key, v.keymap.Save):
		v.openPrompt()
		return v, nil
	case keymap.Matches(key, v.keymap.Clear):
		v.Clear()
		return v, nil
	case keymap.Matches(key, v.keymap.ScrollUp):
		v.panel.ScrollUp()
		return v, nil
	case keymap.Matches(key, v.keymap.ScrollDown):
		v.panel.ScrollDown()
		return v, nil
	}

	_, cmd := v.focused().Update(msg)
	return v, cmd
}

func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Start):
		path := strings.TrimSpace(v.prompt.Value())
		v.closePrompt()
		return v, v.export(path, v.panel.Content())
	case keymap.Matches(key, v.keymap.Cancel):
		v.closePrompt()
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
		return v, nil
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

// start validates the inputs and launches the search worker.
// It is a no-op while a run is active.
func (v *View) start() tea.Cmd {
	if v.running {
		v.setNotice(domain.UserMessage(domain.ErrSearchInProgress), true)
		return nil
	}
	if v.searchService == nil {
		v.setError(ErrNoSearchService)
		return nil
	}

	req, err := domain.NewSearchRequest(strings.TrimSpace(v.folder.Value()), v.terms.Value(), v.caseSensitive)
	if err != nil {
		v.setError(err)
		return nil
	}

	v.clearNotice()
	if req.HasEmptyTerm() {
		v.setNotice("Warning: "+domain.EmptyTermWarning, false)
	}
	v.err = nil
	v.meter.Reset()
	v.panel.Clear()
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel
	v.running = true
	v.updates = make(chan tea.Msg, updateBuffer)

	go runSearch(ctx, v.searchService, req, v.updates)
	return v.waitForUpdate()
}

// runSearch is the worker: it posts progress and the final outcome on ch.
func runSearch(ctx context.Context, svc driving.SearchService, req domain.SearchRequest, ch chan<- tea.Msg) {
	defer close(ch)

	results, err := svc.Search(ctx, req, func(p domain.Progress) {
		select {
		case ch <- messages.ProgressUpdated{Progress: p}:
		case <-ctx.Done():
		}
	})

	select {
	case ch <- messages.SearchCompleted{Results: results, Err: err}:
	case <-ctx.Done():
	}
}

// waitForUpdate returns a command that delivers the next worker message.
func (v *View) waitForUpdate() tea.Cmd {
	ch := v.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	v.running = false
	v.updates = nil
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}

	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.panel.SetContent(domain.FormatResults(msg.Results))
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage("")
	v.statusbar.SetMatchCount(len(msg.Results))
}

func (v *View) openPrompt() {
	if strings.TrimSpace(v.panel.Content()) == "" {
		v.setError(domain.ErrNothingToExport)
		return
	}
	v.saving = true
	v.focused().Blur()
	v.prompt.SetValue(DefaultExportName)
	v.prompt.Focus()
	v.statusbar.SetState(status.StateSaving)
}

func (v *View) closePrompt() {
	v.saving = false
	v.prompt.Blur()
	v.focused().Focus()
}

func (v *View) export(path, content string) tea.Cmd {
	svc := v.exportService
	return func() tea.Msg {
		if svc == nil {
			return messages.ExportCompleted{Err: ErrNoExportService}
		}
		written, err := svc.Export(path, content)
		return messages.ExportCompleted{Path: written, Err: err}
	}
}

func (v *View) handleExportCompleted(msg messages.ExportCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	v.err = nil
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage("Results saved to " + msg.Path)
}

// Clear resets inputs, progress, results and notices.
// It is refused while a run is active.
func (v *View) Clear() {
	if v.running {
		v.setNotice(domain.UserMessage(domain.ErrSearchInProgress), true)
		return
	}
	v.folder.Reset()
	v.terms.Reset()
	v.caseSensitive = v.defaultCase
	v.meter.Reset()
	v.panel.Clear()
	v.clearNotice()
	v.err = nil
	v.statusbar.Clear()
	v.focusField(focusFolder)
}

// Cancel stops a running search, if any.
func (v *View) Cancel() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(domain.UserMessage(err))
}

func (v *View) setNotice(notice string, isErr bool) {
	v.notice = notice
	v.noticeErr = isErr
}

func (v *View) clearNotice() {
	v.notice = ""
	v.noticeErr = false
}

func (v *View) focused() *input.Field {
	if v.focus == focusTerms {
		return v.terms
	}
	return v.folder
}

func (v *View) focusField(i int) {
	v.focused().Blur()
	v.focus = i
	v.focused().Focus()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("ocrr")+v.styles.Muted.Render("  OCR search over a folder of PDFs"),
		"",
		v.folder.View(),
		v.terms.View(),
		v.styles.Muted.Render(fmt.Sprintf("Case sensitive: %s", checkbox(v.caseSensitive))),
		"",
		v.meter.View(),
	)

	if v.notice != "" {
		style := v.styles.Warning
		if v.noticeErr {
			style = v.styles.Error
		}
		sections = append(sections, style.Render(v.notice))
	}

	sections = append(sections, "", v.panel.View())

	if v.saving {
		sections = append(sections, v.prompt.View())
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.folder.SetWidth(width)
	v.terms.SetWidth(width)
	v.prompt.SetWidth(width)
	v.meter.SetWidth(width)
	// Reserve space for header, inputs, meter and status bar.
	v.panel.SetDimensions(width, height-16)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Running reports whether a search is active.
func (v *View) Running() bool {
	return v.running
}

// Saving reports whether the save prompt is open.
func (v *View) Saving() bool {
	return v.saving
}

// Folder returns the folder input value.
func (v *View) Folder() string {
	return v.folder.Value()
}

// Terms returns the raw terms input value.
func (v *View) Terms() string {
	return v.terms.Value()
}

// SetTerms sets the terms input value.
func (v *View) SetTerms(terms string) {
	v.terms.SetValue(terms)
}

// CaseSensitive reports the current matching mode.
func (v *View) CaseSensitive() bool {
	return v.caseSensitive
}

// Displayed returns the result text currently shown.
func (v *View) Displayed() string {
	return v.panel.Content()
}

// Progress returns the latest progress snapshot.
func (v *View) Progress() domain.Progress {
	return v.meter.Progress()
}

// Notice returns the current notice line.
func (v *View) Notice() string {
	return v.notice
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
