package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/config"
	"github.com/lazyshelf/lazyshelf/internal/criteria"
	"github.com/lazyshelf/lazyshelf/internal/db/pgcatalog"
	"github.com/lazyshelf/lazyshelf/internal/export"
	"github.com/lazyshelf/lazyshelf/internal/history"
	"github.com/lazyshelf/lazyshelf/internal/models"
	"github.com/lazyshelf/lazyshelf/internal/query"
	"github.com/lazyshelf/lazyshelf/internal/searches"
	"github.com/lazyshelf/lazyshelf/internal/ui/components"
	"github.com/lazyshelf/lazyshelf/internal/ui/help"
	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

// Options carries the catalog source and the optional stores the App
// depends on. Catalog is always required; PG is set when the source is a
// PostgreSQL table, in which case Catalog acts as the local snapshot for
// the navigation tree.
type Options struct {
	Catalog  *catalog.Store
	PG       *pgcatalog.Store
	History  *history.Store
	Searches *searches.Manager
	Source   string // display label, e.g. "user@host:5432/db.products"
}

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	// Catalog source
	catalogStore *catalog.Store
	pgStore      *pgcatalog.Store

	// Persistence
	historyStore    *history.Store
	searchesManager *searches.Manager

	sourceLabel string

	// Panels
	leftPanel  components.Panel
	rightPanel components.Panel

	// Components
	treeView       *components.TreeView
	tableView      *components.TableView
	previewPane    *components.PreviewPane
	searchInput    *components.SearchInput
	filterBuilder  *components.FilterBuilder
	searchesDialog *components.SearchesDialog
	historyDialog  *components.HistoryDialog
	errorOverlay   *components.ErrorOverlay

	// Overlay visibility
	showSearch         bool
	showFilterBuilder  bool
	showSearchesDialog bool
	showHistoryDialog  bool

	// Tree type-to-filter state
	fullTree        *models.TreeNode
	treeFilterOn    bool
	treeFilterInput string

	// Active criteria and its last result set
	currentCriteria criteria.Criteria
	currentValues   map[string]string
	results         []catalog.Product

	// Export confirmation: format awaiting a second keypress
	pendingExport string

	statusMessage string
}

// CatalogLoadedMsg is sent when the catalog snapshot is loaded
type CatalogLoadedMsg struct {
	Products []catalog.Product
	Source   string
	Err      error
}

// ResultsMsg is sent when a filter run completes
type ResultsMsg struct {
	Products []catalog.Product
	Total    int
	Criteria criteria.Criteria
	Values   map[string]string
	Duration time.Duration
	Err      error
}

// ExportDoneMsg is sent when an export finishes
type ExportDoneMsg struct {
	Path string
	Err  error
}

// HistoryEntriesMsg carries the loaded run history entries
type HistoryEntriesMsg struct {
	Entries []history.RunEntry
	Err     error
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// New creates a new App instance with config
func New(cfg *config.Config, opts Options) *App {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	if cfg != nil && cfg.UI.PanelWidthRatio > 0 && cfg.UI.PanelWidthRatio < 100 {
		state.LeftPanelWidth = cfg.UI.PanelWidthRatio
	}

	app := &App{
		state:           state,
		config:          cfg,
		theme:           th,
		catalogStore:    opts.Catalog,
		pgStore:         opts.PG,
		historyStore:    opts.History,
		searchesManager: opts.Searches,
		sourceLabel:     opts.Source,
		treeView:        components.NewTreeView(nil, th),
		tableView:       components.NewTableView(),
		previewPane:     components.NewPreviewPane(th),
		searchInput:     components.NewSearchInput(th),
		filterBuilder:   components.NewFilterBuilder(th),
		searchesDialog:  components.NewSearchesDialog(th),
		historyDialog:   components.NewHistoryDialog(th),
		errorOverlay:    components.NewErrorOverlay(th),
		currentValues:   make(map[string]string),
		leftPanel: components.Panel{
			Title: "Catalog",
			Style: lipgloss.NewStyle().BorderForeground(th.BorderFocused),
		},
		rightPanel: components.Panel{
			Title: "Products",
			Style: lipgloss.NewStyle().BorderForeground(th.Border),
		},
	}

	if opts.PG != nil {
		app.filterBuilder.SetSQLPreview(opts.PG.Table())
	}

	if cfg != nil && cfg.UI.ShowPreview {
		app.previewPane.ForceHidden = false
	}

	app.updatePanelDimensions()
	app.updatePanelStyles()

	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadCatalog
}

// loadCatalog loads the catalog snapshot used for the navigation tree.
// For a file source the store is already populated; for PostgreSQL the
// full table is fetched once.
func (a *App) loadCatalog() tea.Msg {
	if a.pgStore == nil {
		return CatalogLoadedMsg{
			Products: a.catalogStore.Snapshot(),
			Source:   a.catalogStore.Source(),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.queryTimeout())
	defer cancel()

	products, err := a.pgStore.List(ctx, nil)
	if err != nil {
		return CatalogLoadedMsg{Err: err}
	}

	source := a.sourceLabel
	if source == "" {
		source = a.pgStore.Table()
	}
	a.catalogStore.Replace(products, source)

	return CatalogLoadedMsg{Products: products, Source: source}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case CatalogLoadedMsg:
		if msg.Err != nil {
			a.ShowError("Catalog Error", fmt.Sprintf("Failed to load catalog:\n\n%v", msg.Err))
			return a, nil
		}
		a.state.Source = msg.Source
		a.state.TotalLoaded = len(msg.Products)
		a.fullTree = a.buildTree(msg.Products)
		a.treeView.Root = a.fullTree
		// Show everything until the first criteria are applied
		return a, a.runCriteria(criteria.Criteria{}, map[string]string{})

	case ResultsMsg:
		return a.handleResults(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			a.ShowError("Export Failed", msg.Err.Error())
		} else {
			a.statusMessage = fmt.Sprintf("Exported to %s", msg.Path)
		}
		return a, nil

	case components.TreeNodeSelectedMsg:
		return a.handleTreeSelection(msg.Node)

	case components.TreeNodeExpandedMsg:
		return a, nil

	case components.SearchInputMsg:
		a.showSearch = false
		a.searchInput.Reset()
		values := map[string]string{}
		if msg.Mode == "tag" {
			values[criteria.KeyTag] = msg.Query
		} else {
			values[criteria.KeyNameContains] = msg.Query
		}
		return a.applyValues(values)

	case components.CloseSearchMsg:
		a.showSearch = false
		a.searchInput.Reset()
		return a, nil

	case components.ApplyCriteriaMsg:
		a.showFilterBuilder = false
		return a, a.runCriteria(msg.Criteria, msg.Values)

	case components.CloseFilterBuilderMsg:
		a.showFilterBuilder = false
		return a, nil

	case components.RunSavedSearchMsg:
		a.showSearchesDialog = false
		if a.searchesManager != nil {
			_ = a.searchesManager.RecordUsage(msg.Search.ID)
		}
		return a.applyValues(msg.Search.Values)

	case components.SaveSearchMsg:
		if a.searchesManager == nil {
			return a, nil
		}
		if _, err := a.searchesManager.Add(msg.Name, msg.Description, a.currentValues); err != nil {
			a.ShowError("Save Failed", err.Error())
			return a, nil
		}
		a.searchesDialog.SetSearches(a.searchesManager.GetAll())
		a.statusMessage = fmt.Sprintf("Saved search '%s'", msg.Name)
		return a, nil

	case components.DeleteSavedSearchMsg:
		if a.searchesManager == nil {
			return a, nil
		}
		if err := a.searchesManager.Delete(msg.ID); err != nil {
			a.ShowError("Delete Failed", err.Error())
			return a, nil
		}
		a.searchesDialog.SetSearches(a.searchesManager.GetAll())
		return a, nil

	case components.CloseSearchesDialogMsg:
		a.showSearchesDialog = false
		return a, nil

	case components.RunHistoryEntryMsg:
		a.showHistoryDialog = false
		return a.applyValues(criteria.ParseSummary(msg.Entry.Criteria))

	case components.QueryHistoryMsg:
		return a, a.queryHistory(msg.Query)

	case HistoryEntriesMsg:
		if msg.Err != nil {
			a.showHistoryDialog = false
			a.ShowError("History Error", msg.Err.Error())
			return a, nil
		}
		a.historyDialog.SetEntries(msg.Entries)
		return a, nil

	case components.CloseHistoryDialogMsg:
		a.showHistoryDialog = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
		a.searchInput.Width = min(msg.Width-10, 70)
		a.filterBuilder.Width = min(msg.Width-10, 80)
		a.searchesDialog.Width = min(msg.Width-10, 80)
		a.searchesDialog.Height = min(msg.Height-6, 30)
		a.historyDialog.Width = min(msg.Width-10, 80)
		a.historyDialog.Height = min(msg.Height-6, 30)
		a.errorOverlay.Width = min(msg.Width-10, 60)
		a.previewPane.Width = msg.Width
		a.previewPane.MaxHeight = msg.Height / 3
	}

	// Overlay components consume non-key messages too (e.g. cursor blink)
	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKey routes key events by overlay priority
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Error overlay consumes everything until dismissed
	if a.errorOverlay.IsVisible() {
		switch key {
		case "esc", "enter":
			a.errorOverlay.Dismiss()
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.state.ViewMode == models.HelpMode {
		switch key {
		case "?", "esc", "q":
			a.state.ViewMode = models.NormalMode
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	if a.showFilterBuilder {
		var cmd tea.Cmd
		a.filterBuilder, cmd = a.filterBuilder.Update(msg)
		return a, cmd
	}

	if a.showSearchesDialog {
		var cmd tea.Cmd
		a.searchesDialog, cmd = a.searchesDialog.Update(msg)
		return a, cmd
	}

	if a.showHistoryDialog {
		var cmd tea.Cmd
		a.historyDialog, cmd = a.historyDialog.Update(msg)
		return a, cmd
	}

	// Tree filter input captures keys ahead of the global bindings
	if a.treeFilterOn {
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleTreeFilterKey(key)
	}

	// Any key other than a repeat cancels a pending export confirmation
	if key != "e" && key != "E" {
		a.pendingExport = ""
	}

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.state.ViewMode = models.HelpMode

	case "tab":
		if a.state.FocusedPanel == models.LeftPanel {
			a.state.FocusedPanel = models.RightPanel
		} else {
			a.state.FocusedPanel = models.LeftPanel
		}
		a.updatePanelStyles()

	case "/":
		// Filters the tree when the catalog panel is focused, otherwise
		// opens the product search
		if a.state.FocusedPanel == models.LeftPanel {
			a.treeFilterOn = true
			a.treeFilterInput = ""
			a.applyTreeFilter()
		} else {
			a.showSearch = true
			a.searchInput.Reset()
		}
		return a, nil

	case "f":
		a.showFilterBuilder = true
		a.filterBuilder.SetValues(a.currentValues)
		return a, nil

	case "s":
		if a.searchesManager != nil {
			a.showSearchesDialog = true
			a.searchesDialog.SetSearches(a.searchesManager.GetAll())
			a.searchesDialog.OpenSave()
		}
		return a, nil

	case "S":
		if a.searchesManager != nil {
			a.showSearchesDialog = true
			a.searchesDialog.SetSearches(a.searchesManager.GetAll())
		}
		return a, nil

	case "H":
		if a.historyStore != nil {
			a.showHistoryDialog = true
			return a, a.queryHistory("")
		}
		return a, nil

	case "e":
		return a.confirmExport("csv")

	case "E":
		return a.confirmExport("json")

	case "r", "f5":
		return a, a.runCriteria(a.currentCriteria, a.currentValues)

	case "ctrl+r":
		return a, a.runCriteria(criteria.Criteria{}, map[string]string{})

	case "p":
		a.syncPreview()
		a.previewPane.Toggle()
		a.updatePanelDimensions()
		return a, nil

	case "y":
		if a.previewPane.Visible {
			if err := a.previewPane.CopyContent(); err != nil {
				a.ShowError("Copy Failed", err.Error())
			} else {
				a.statusMessage = "Copied to clipboard"
			}
		}
		return a, nil

	default:
		if a.state.FocusedPanel == models.LeftPanel {
			var cmd tea.Cmd
			a.treeView, cmd = a.treeView.Update(msg)
			return a, cmd
		}

		switch key {
		case "up", "k":
			a.tableView.MoveSelection(-1)
			a.syncPreview()
		case "down", "j":
			a.tableView.MoveSelection(1)
			a.syncPreview()
		case "pgup", "ctrl+u":
			a.tableView.PageUp()
			a.syncPreview()
		case "pgdown", "ctrl+d":
			a.tableView.PageDown()
			a.syncPreview()
		}
	}

	return a, nil
}

// handleTreeFilterKey handles input while the tree filter is active
func (a *App) handleTreeFilterKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		a.treeFilterOn = false
		a.treeFilterInput = ""
		a.treeView.Root = a.fullTree
		a.treeView.CursorIndex = 0
		a.treeView.ScrollOffset = 0
	case "enter":
		// Keep the filtered view and return to navigation
		a.treeFilterOn = false
	case "backspace":
		if len(a.treeFilterInput) > 0 {
			a.treeFilterInput = a.treeFilterInput[:len(a.treeFilterInput)-1]
		}
		a.applyTreeFilter()
	default:
		if len(key) == 1 {
			a.treeFilterInput += key
			a.applyTreeFilter()
		}
	}
	return a, nil
}

// applyTreeFilter rebuilds the visible tree from the matching nodes
func (a *App) applyTreeFilter() {
	if a.fullTree == nil {
		return
	}
	if a.treeFilterInput == "" {
		a.treeView.Root = a.fullTree
		a.treeView.CursorIndex = 0
		a.treeView.ScrollOffset = 0
		return
	}

	parsed := components.ParseSearchQuery(a.treeFilterInput)
	matches := components.FilterTree(a.fullTree, parsed)

	// Matched nodes are copied so the full tree keeps its parent links
	root := models.NewTreeNode("root", models.TreeNodeTypeRoot, "Catalog")
	root.Expanded = true
	categorySection := models.NewTreeNode("section:categories", models.TreeNodeTypeSection, "Categories")
	categorySection.Expanded = true
	tagSection := models.NewTreeNode("section:tags", models.TreeNodeTypeSection, "Tags")
	tagSection.Expanded = true

	for _, match := range matches {
		node := models.NewTreeNode(match.ID, match.Type, match.Label)
		node.Count = match.Count
		if match.Type == models.TreeNodeTypeCategory {
			categorySection.AddChild(node)
		} else {
			tagSection.AddChild(node)
		}
	}

	if len(categorySection.Children) > 0 {
		root.AddChild(categorySection)
	}
	if len(tagSection.Children) > 0 {
		root.AddChild(tagSection)
	}

	a.treeView.Root = root
	a.treeView.CursorIndex = 0
	a.treeView.ScrollOffset = 0
}

// handleTreeSelection converts a selected tree node into filter criteria
func (a *App) handleTreeSelection(node *models.TreeNode) (tea.Model, tea.Cmd) {
	if node == nil || !node.Selectable {
		return a, nil
	}

	nodeType, value := models.ParseNodeID(node.ID)
	values := map[string]string{}
	switch nodeType {
	case "category":
		values[criteria.KeyCategory] = value
	case "tag":
		values[criteria.KeyTag] = value
	default:
		return a, nil
	}

	return a.applyValues(values)
}

// applyValues parses raw criteria values and runs them
func (a *App) applyValues(values map[string]string) (tea.Model, tea.Cmd) {
	parsed, err := criteria.ParseValues(values)
	if err != nil {
		a.ShowError("Invalid Criteria", err.Error())
		return a, nil
	}
	return a, a.runCriteria(parsed, values)
}

// runCriteria executes the criteria against the catalog source
func (a *App) runCriteria(c criteria.Criteria, values map[string]string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		built := c.Build()

		var products []catalog.Product
		var err error

		if a.pgStore != nil {
			ctx, cancel := context.WithTimeout(context.Background(), a.queryTimeout())
			defer cancel()
			products, err = a.pgStore.List(ctx, built)
		} else {
			products = query.FindAll(a.catalogStore.Snapshot(), built)
		}

		return ResultsMsg{
			Products: products,
			Total:    a.catalogStore.Len(),
			Criteria: c,
			Values:   values,
			Duration: time.Since(start),
			Err:      err,
		}
	}
}

// handleResults applies a completed filter run to the UI and the history
func (a *App) handleResults(msg ResultsMsg) (tea.Model, tea.Cmd) {
	a.recordRun(msg)

	if msg.Err != nil {
		a.ShowError("Query Failed", msg.Err.Error())
		return a, nil
	}

	a.currentCriteria = msg.Criteria
	a.currentValues = msg.Values
	a.results = msg.Products
	a.state.TotalMatched = len(msg.Products)

	maxCellLen := 100
	if a.config != nil && a.config.Catalog.MaxCellDisplayLength > 0 {
		maxCellLen = a.config.Catalog.MaxCellDisplayLength
	}
	a.tableView.SetProducts(msg.Products, msg.Total, maxCellLen)
	a.rightPanel.Badge = fmt.Sprintf("%d", len(msg.Products))

	if len(msg.Products) == 0 {
		a.previewPane.Clear()
	} else {
		a.syncPreview()
	}

	a.statusMessage = fmt.Sprintf("%d of %d products in %dms",
		len(msg.Products), msg.Total, msg.Duration.Milliseconds())

	return a, nil
}

// recordRun persists a filter run in the history store
func (a *App) recordRun(msg ResultsMsg) {
	if a.historyStore == nil || a.config == nil || !a.config.History.Enabled {
		return
	}
	if msg.Err != nil && !a.config.History.SaveFailedRuns {
		return
	}

	entry := history.RunEntry{
		Source:   a.state.Source,
		Criteria: msg.Criteria.Summary(),
		Matched:  len(msg.Products),
		Total:    msg.Total,
		Duration: msg.Duration,
		Success:  msg.Err == nil,
	}
	if msg.Err != nil {
		entry.ErrorMessage = msg.Err.Error()
	}

	if err := a.historyStore.Add(entry); err != nil {
		return
	}
	if a.config.History.MaxEntries > 0 {
		_ = a.historyStore.Prune(a.config.History.MaxEntries)
	}
}

// confirmExport requires the export key to be pressed twice when the
// config asks for confirmation
func (a *App) confirmExport(format string) (tea.Model, tea.Cmd) {
	if a.config != nil && a.config.General.ConfirmExport && a.pendingExport != format {
		a.pendingExport = format
		a.statusMessage = fmt.Sprintf("Press again to export %s", format)
		return a, nil
	}
	a.pendingExport = ""
	return a, a.exportResults(format)
}

// queryHistory loads run history entries, most recent first. An empty
// query returns the latest runs; otherwise entries are matched by their
// criteria text.
func (a *App) queryHistory(q string) tea.Cmd {
	return func() tea.Msg {
		limit := 50
		if a.config != nil && a.config.General.DefaultLimit > 0 {
			limit = a.config.General.DefaultLimit
		}

		var entries []history.RunEntry
		var err error
		if q == "" {
			entries, err = a.historyStore.GetRecent(limit)
		} else {
			entries, err = a.historyStore.Search(q, limit)
		}

		return HistoryEntriesMsg{Entries: entries, Err: err}
	}
}

// exportResults writes the current result set to a timestamped file
func (a *App) exportResults(format string) tea.Cmd {
	products := a.results
	return func() tea.Msg {
		if len(products) == 0 {
			return ExportDoneMsg{Err: fmt.Errorf("no products to export")}
		}

		path := fmt.Sprintf("lazyshelf_%s.%s", time.Now().Format("20060102_150405"), format)

		var err error
		switch format {
		case "csv":
			err = export.ExportToCSV(products, path)
		default:
			err = export.ExportToJSON(products, path)
		}

		return ExportDoneMsg{Path: path, Err: err}
	}
}

// syncPreview updates the preview pane to the selected product. Unless the
// user hid the pane, it opens as soon as there is something to show.
func (a *App) syncPreview() {
	if a.tableView.SelectedRow < 0 || a.tableView.SelectedRow >= len(a.results) {
		return
	}
	a.previewPane.SetProduct(a.results[a.tableView.SelectedRow])
	if !a.previewPane.ForceHidden && !a.previewPane.Visible {
		a.previewPane.Visible = true
		a.updatePanelDimensions()
	}
}

// buildTree builds the navigation tree with per-node match counts
func (a *App) buildTree(products []catalog.Product) *models.TreeNode {
	categories := a.catalogStore.Categories()
	tags := a.catalogStore.Tags()

	counts := make(map[string]int, len(categories)+len(tags))
	for _, category := range categories {
		counts["category:"+category] = query.Count(products, catalog.CategoryIs{Category: category})
	}
	for _, tag := range tags {
		counts["tag:"+tag] = query.Count(products, catalog.HasTag{Tag: tag})
	}

	return models.BuildCatalogTree(categories, tags, counts)
}

// queryTimeout returns the configured per-query timeout
func (a *App) queryTimeout() time.Duration {
	if a.config != nil && a.config.Performance.QueryTimeout > 0 {
		return time.Duration(a.config.Performance.QueryTimeout) * time.Millisecond
	}
	return 30 * time.Second
}

// View implements tea.Model
func (a *App) View() string {
	if a.errorOverlay.IsVisible() {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height, lipgloss.NewStyle())
	}

	if a.showFilterBuilder {
		return a.centerOverlay(a.filterBuilder.View())
	}

	if a.showSearchesDialog {
		return a.centerOverlay(a.searchesDialog.View())
	}

	if a.showHistoryDialog {
		return a.centerOverlay(a.historyDialog.View())
	}

	return a.renderNormalView()
}

// centerOverlay places an overlay in the middle of the screen
func (a *App) centerOverlay(overlay string) string {
	return lipgloss.Place(
		a.state.Width, a.state.Height,
		lipgloss.Center, lipgloss.Center,
		overlay,
	)
}

// renderNormalView renders the normal application view
func (a *App) renderNormalView() string {
	topBarLeft := "lazyshelf"
	if a.state.Source != "" {
		topBarLeft += "  " + a.state.Source
	}
	topBarContent := a.formatStatusBar(topBarLeft, "? Help")

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(topBarContent)

	bottomBarLeft := "[/] Search  [f] Filter  [s] Save  [S] Searches  [H] History  [tab] Panel  [q] Quit"
	bottomBarContent := a.formatStatusBar(bottomBarLeft, a.statusMessage)

	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(bottomBarContent)

	// Update tree view dimensions and render
	a.treeView.Width = a.leftPanel.Width
	a.treeView.Height = a.leftPanel.Height
	a.leftPanel.Content = a.treeView.View()
	if a.treeFilterOn || a.treeFilterInput != "" {
		filterLine := "/" + a.treeFilterInput
		if a.treeFilterOn {
			filterLine += "_"
		}
		a.leftPanel.Content = filterLine + "\n" + a.leftPanel.Content
	}

	// Update table view dimensions and render
	a.tableView.Width = a.rightPanel.Width
	a.tableView.Height = a.rightPanel.Height
	a.rightPanel.Content = a.tableView.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.leftPanel.View(),
		a.rightPanel.View(),
	)

	sections := []string{topBar}

	if a.showSearch {
		sections = append(sections, a.searchInput.View())
	}

	sections = append(sections, panels)

	if a.previewPane.Visible {
		sections = append(sections, a.previewPane.View())
	}

	sections = append(sections, bottomBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Reserve space for top bar (1 line), bottom bar (1 line), and the
	// preview pane when visible
	contentHeight := a.state.Height - 2 - a.previewPane.Height()
	if a.showSearch {
		contentHeight -= 4
	}
	if contentHeight < 5 {
		contentHeight = 5
	}

	leftWidth := (a.state.Width * a.state.LeftPanelWidth) / 100
	if leftWidth < 20 {
		leftWidth = 20
	}

	rightWidth := a.state.Width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = a.state.Width - rightWidth - 4
	}

	a.leftPanel.Width = leftWidth
	a.leftPanel.Height = contentHeight
	a.rightPanel.Width = rightWidth
	a.rightPanel.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	if a.state.FocusedPanel == models.LeftPanel {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	} else {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
	}
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len(left)
	rightLen := len(right)

	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return left[:availableWidth-rightLen] + right
		}
		if availableWidth <= leftLen {
			return left[:availableWidth]
		}
		return left
	}

	spacing := availableWidth - leftLen - rightLen
	if spacing < 0 {
		spacing = 0
	}

	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.Title = title
	a.errorOverlay.Show(message)
}
