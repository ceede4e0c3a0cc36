// Package tui is the interactive console for the warehouse. It uses
// bubbletea, which follows The Elm Architecture: the App model holds all
// state, Update reacts to messages, View renders the state to a string.
package tui

import (
	"context"
	"fmt"
	"strings"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/stock"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMenu  appState = iota // main menu with the six actions
	stateInput                 // free-text prompt for batch or order codes
)

// inputAction tells the input screen which command consumes the text.
type inputAction int

const (
	actionAddStock inputAction = iota
	actionPackOrder
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// menuItem implements list.Item for the action menu.
type menuItem struct {
	key   string
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.key + ". " + i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

var menuItems = []menuItem{
	{key: "1", title: "Add stock", desc: "Receive a comma-separated batch of product codes"},
	{key: "2", title: "Pack order", desc: "Assemble an order into a parcel"},
	{key: "3", title: "Show inventory", desc: "Stock level of every known product"},
	{key: "4", title: "Show packed parcels", desc: "The archive, in packing order"},
	{key: "5", title: "Show alerts", desc: "Pending low-stock alerts"},
	{key: "6", title: "Quit", desc: "Leave the warehouse console"},
}

// App is the console model. It drives the same command and query handlers
// as the HTTP surface.
type App struct {
	state  appState
	action inputAction

	menu   list.Model
	input  textinput.Model
	output string

	width  int
	height int

	addStockHandler         commands.AddStockCommandHandler
	packOrderHandler        commands.PackOrderCommandHandler
	getInventoryHandler     queries.GetInventoryQueryHandler
	getPackedParcelsHandler queries.GetPackedParcelsQueryHandler
	getAlertLogHandler      queries.GetAlertLogQueryHandler
}

// NewApp creates the console model over the given handlers.
func NewApp(
	addStockHandler commands.AddStockCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getPackedParcelsHandler queries.GetPackedParcelsQueryHandler,
	getAlertLogHandler queries.GetAlertLogQueryHandler,
) *App {
	items := make([]list.Item, len(menuItems))
	for i := range menuItems {
		items[i] = menuItems[i]
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "WAREHOUSE"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	input := textinput.New()
	input.Placeholder = "A3, B5, C1"
	input.CharLimit = 256

	return &App{
		state:                   stateMenu,
		menu:                    menu,
		input:                   input,
		addStockHandler:         addStockHandler,
		packOrderHandler:        packOrderHandler,
		getInventoryHandler:     getInventoryHandler,
		getPackedParcelsHandler: getPackedParcelsHandler,
		getAlertLogHandler:      getAlertLogHandler,
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(app *App) error {
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width-4, msg.Height-12)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		switch a.state {
		case stateMenu:
			return a.updateMenu(msg)
		case stateInput:
			return a.updateInput(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3", "4", "5", "6":
		return a.runChoice(msg.String())
	case "enter":
		if item, ok := a.menu.SelectedItem().(menuItem); ok {
			return a.runChoice(item.key)
		}
		return a, nil
	case "q":
		return a, tea.Quit
	}

	if msg.Type == tea.KeyRunes {
		a.output = warnStyle.Render(fmt.Sprintf("unknown choice %q", msg.String()))
		return a, nil
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) runChoice(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		return a.startInput(actionAddStock, "Batch to receive:")
	case "2":
		return a.startInput(actionPackOrder, "Order to pack:")
	case "3":
		a.output = a.renderInventory()
	case "4":
		a.output = a.renderParcels()
	case "5":
		a.output = a.renderAlerts()
	case "6":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) startInput(action inputAction, prompt string) (tea.Model, tea.Cmd) {
	a.state = stateInput
	a.action = action
	a.input.Prompt = prompt + " "
	a.input.SetValue("")
	a.input.Focus()
	return a, textinput.Blink
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := a.input.Value()
		a.state = stateMenu
		a.input.Blur()
		switch a.action {
		case actionAddStock:
			a.output = a.runAddStock(raw)
		case actionPackOrder:
			a.output = a.runPackOrder(raw)
		}
		return a, nil
	case tea.KeyEsc:
		a.state = stateMenu
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) runAddStock(raw string) string {
	cmd, err := commands.NewAddStockCommand(raw)
	if err != nil {
		return warnStyle.Render(err.Error())
	}

	notices, err := a.addStockHandler.Handle(context.Background(), cmd)
	if err != nil {
		return warnStyle.Render(err.Error())
	}

	lines := []string{"batch received"}
	lines = append(lines, renderNotices(notices)...)
	return strings.Join(lines, "\n")
}

func (a *App) runPackOrder(raw string) string {
	cmd, err := commands.NewPackOrderCommand(raw)
	if err != nil {
		return warnStyle.Render(err.Error())
	}

	result, err := a.packOrderHandler.Handle(context.Background(), cmd)
	if err != nil {
		return warnStyle.Render(err.Error())
	}

	var lines []string
	if result.Packed() {
		lines = append(lines, fmt.Sprintf("parcel packed: %d item(s)", result.Parcel.Size()))
		for _, item := range result.Parcel.ItemsTopDown() {
			lines = append(lines, fmt.Sprintf("  %s (volume %d)", item.Code, item.Volume))
		}
	} else {
		lines = append(lines, "nothing to pack")
	}
	lines = append(lines, renderNotices(result.Notices)...)
	return strings.Join(lines, "\n")
}

func (a *App) renderInventory() string {
	inventory, err := a.getInventoryHandler.Handle(context.Background(), queries.NewGetInventoryQuery())
	if err != nil {
		return warnStyle.Render(err.Error())
	}
	if len(inventory) == 0 {
		return "inventory is empty"
	}

	lines := make([]string, 0, len(inventory)+1)
	lines = append(lines, "inventory:")
	for _, line := range inventory {
		marker := ""
		if line.Low {
			marker = warnStyle.Render("  (low)")
		}
		lines = append(lines, fmt.Sprintf("  %s: %d%s", line.Code, line.Quantity, marker))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderParcels() string {
	parcels, err := a.getPackedParcelsHandler.Handle(context.Background(), queries.NewGetPackedParcelsQuery())
	if err != nil {
		return warnStyle.Render(err.Error())
	}
	if len(parcels) == 0 {
		return "no parcels packed yet"
	}

	var lines []string
	for _, p := range parcels {
		lines = append(lines, fmt.Sprintf("parcel %d:", p.Number))
		for _, item := range p.Items {
			lines = append(lines, fmt.Sprintf("  %s (volume %d)", item.Code, item.Volume))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderAlerts() string {
	log, err := a.getAlertLogHandler.Handle(context.Background(), queries.NewGetAlertLogQuery())
	if err != nil {
		return warnStyle.Render(err.Error())
	}
	if len(log.Codes) == 0 {
		return "no pending alerts"
	}

	lines := []string{fmt.Sprintf("pending alerts (%d/%d):", len(log.Codes), log.Capacity)}
	for _, code := range log.Codes {
		lines = append(lines, "  "+code)
	}
	return strings.Join(lines, "\n")
}

func renderNotices(notices []stock.Notice) []string {
	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		lines = append(lines, warnStyle.Render(n.String()))
	}
	return lines
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Warehouse Console"))
	b.WriteString("\n\n")

	if a.output != "" {
		b.WriteString(outputStyle.Render(a.output))
		b.WriteString("\n\n")
	}

	switch a.state {
	case stateInput:
		b.WriteString(a.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to confirm, esc to cancel"))
	default:
		b.WriteString(a.menu.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("press 1-6, q to quit"))
	}

	return b.String()
}
