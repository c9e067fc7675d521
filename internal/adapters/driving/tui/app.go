package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/keymap"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/messages"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/styles"
	"github.com/Uadhikari111/OCR-Pdf/internal/adapters/driving/tui/views/search"
	"github.com/Uadhikari111/OCR-Pdf/internal/logger"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the key bindings.
	keymap *keymap.KeyMap

	// searchView is the only screen.
	searchView *search.View

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	view := search.NewView(s, km, ports.Search, ports.Export)

	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("load settings: %v", err)
		} else {
			view.SetCaseSensitive(settings.Search.CaseSensitive)
		}
	}

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		searchView: view,
	}, nil
}

// WithContext sets the context for the app and its searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// WithFolder prefills the folder input.
func (a *App) WithFolder(folder string) *App {
	a.searchView.SetFolder(folder)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ocrr - PDF OCR search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			a.searchView.Cancel()
			return a, tea.Quit
		}

	case messages.Quit:
		a.searchView.Cancel()
		return a, tea.Quit
	}

	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
