// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/models"
)

const mirrorTickInterval = 500 * time.Millisecond

type boardTab int

const (
	tabRequests boardTab = iota
	tabDuplicates
	tabCatalog
)

type formMode int

const (
	formNone formMode = iota
	formNewRequest
	formNewDuplicate
	formResupply
)

// boardModel is the main screen: three tabs over the two ledger mirrors and
// the catalog preview. The mirrors live in the ledger service; a periodic
// tick re-reads them so background refreshes show up without user input.
type boardModel struct {
	ctx      context.Context
	services *service.ClientServices
	profile  models.Profile

	tab    boardTab
	cursor int

	requests   []models.Request
	duplicates []models.DuplicateItem

	catalog       []models.CatalogItem
	catalogLoaded bool

	form       formMode
	nameInput  textinput.Model
	qtyInput   textinput.Model
	formFocus  int
	resupplyID string

	status string
	logout bool
}

func newBoardModel(ctx context.Context, services *service.ClientServices, profile models.Profile) boardModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "item name"
	nameInput.CharLimit = 64

	qtyInput := textinput.New()
	qtyInput.Placeholder = "quantity"
	qtyInput.CharLimit = 5

	return boardModel{
		ctx:        ctx,
		services:   services,
		profile:    profile,
		requests:   services.LedgerService.Requests(),
		duplicates: services.LedgerService.Duplicates(),
		nameInput:  nameInput,
		qtyInput:   qtyInput,
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.cmdMirrorTick()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mirrorTickMsg:
		m.requests = m.services.LedgerService.Requests()
		m.duplicates = m.services.LedgerService.Duplicates()
		m.clampCursor()
		return m, m.cmdMirrorTick()

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}
		m.requests = m.services.LedgerService.Requests()
		m.duplicates = m.services.LedgerService.Duplicates()
		m.clampCursor()
		return m, nil

	case catalogLoadedMsg:
		m.catalog = msg.items
		m.catalogLoaded = true
		return m, nil

	case tea.KeyMsg:
		if m.form != formNone {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % 3
		m.cursor = 0
		m.status = ""
		if m.tab == tabCatalog && !m.catalogLoaded {
			return m, m.cmdLoadCatalog()
		}
		return m, nil

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.cursor < m.tabLength()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefreshAll()

	case key.Matches(msg, keys.newItem):
		switch m.tab {
		case tabRequests:
			return m.openForm(formNewRequest, "")
		case tabDuplicates:
			return m.openForm(formNewDuplicate, "")
		}
		return m, nil

	case key.Matches(msg, keys.validate):
		if m.tab == tabRequests {
			if request, ok := m.selectedRequest(); ok {
				return m, m.cmdValidateRequest(request.ID)
			}
		}
		return m, nil

	case key.Matches(msg, keys.delete):
		switch m.tab {
		case tabRequests:
			if request, ok := m.selectedRequest(); ok {
				return m, m.cmdDeleteRequest(request.ID)
			}
		case tabDuplicates:
			if item, ok := m.selectedDuplicate(); ok {
				return m, m.cmdDeleteDuplicate(item.ID)
			}
		}
		return m, nil

	case key.Matches(msg, keys.reserve):
		if m.tab == tabDuplicates {
			if item, ok := m.selectedDuplicate(); ok {
				return m, m.cmdReserveDuplicate(item.ID)
			}
		}
		return m, nil

	case key.Matches(msg, keys.edit):
		if m.tab == tabDuplicates {
			if item, ok := m.selectedDuplicate(); ok {
				return m.openForm(formResupply, item.ID)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m boardModel) openForm(mode formMode, resupplyID string) (tea.Model, tea.Cmd) {
	m.form = mode
	m.resupplyID = resupplyID
	m.formFocus = 0
	m.nameInput.SetValue("")
	m.qtyInput.SetValue("")
	m.status = ""

	if mode == formResupply {
		// only the quantity is editable on a resupply
		m.formFocus = 1
		m.qtyInput.Focus()
		return m, textinput.Blink
	}

	m.nameInput.Focus()
	m.qtyInput.Blur()
	return m, textinput.Blink
}

func (m boardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.esc):
		m.form = formNone
		m.nameInput.Blur()
		m.qtyInput.Blur()
		return m, nil

	case key.Matches(msg, keys.tab):
		if m.form == formResupply {
			return m, nil
		}
		if m.formFocus == 0 {
			m.formFocus = 1
			m.nameInput.Blur()
			m.qtyInput.Focus()
		} else {
			m.formFocus = 0
			m.qtyInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case key.Matches(msg, keys.enter):
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.qtyInput, cmd = m.qtyInput.Update(msg)
	}
	return m, cmd
}

func (m boardModel) submitForm() (tea.Model, tea.Cmd) {
	quantity, err := strconv.Atoi(strings.TrimSpace(m.qtyInput.Value()))
	if err != nil {
		m.status = "quantity must be a number"
		return m, nil
	}

	mode := m.form
	name := strings.TrimSpace(m.nameInput.Value())
	resupplyID := m.resupplyID

	m.form = formNone
	m.nameInput.Blur()
	m.qtyInput.Blur()

	switch mode {
	case formNewRequest:
		return m, m.cmdCreateRequest(name, quantity)
	case formNewDuplicate:
		return m, m.cmdCreateDuplicate(name, quantity)
	case formResupply:
		return m, m.cmdResupplyDuplicate(resupplyID, quantity)
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pigeon Raiders") + "  ")
	b.WriteString(statusStyle.Render(m.profile.Pseudo) + "\n\n")
	b.WriteString(m.renderTabs() + "\n\n")

	switch m.tab {
	case tabRequests:
		b.WriteString(m.renderRequests())
	case tabDuplicates:
		b.WriteString(m.renderDuplicates())
	case tabCatalog:
		b.WriteString(m.renderCatalog())
	}

	if m.form != formNone {
		b.WriteString("\n" + m.renderForm())
	}

	if m.status != "" {
		b.WriteString("\n" + errorStyle.Render(m.status))
	}

	b.WriteString("\n\n" + helpStyle.Render(m.helpLine()))
	return appStyle.Render(b.String())
}

func (m boardModel) renderTabs() string {
	labels := []string{"Requests", "Duplicates", "Catalog"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if boardTab(i) == m.tab {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, "  |  ")
}

func (m boardModel) renderRequests() string {
	if len(m.requests) == 0 {
		return statusStyle.Render("no requests yet")
	}

	var b strings.Builder
	for i, request := range m.requests {
		line := fmt.Sprintf("%s x%d by %s", request.Item, request.Quantity, request.Player)
		if request.Status == models.StatusValidated {
			line += "  " + validatedStyle.Render(fmt.Sprintf("%s (%s)", request.Status, request.ValidatedBy))
		} else {
			line += "  " + pendingStyle.Render(request.Status)
		}
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m boardModel) renderDuplicates() string {
	if len(m.duplicates) == 0 {
		return statusStyle.Render("no duplicate items yet")
	}

	var b strings.Builder
	for i, item := range m.duplicates {
		line := fmt.Sprintf("%s by %s (%d/%d left)", item.Item, item.Player, item.Remaining, item.Total)
		if item.ReservedBy != "" {
			line += statusStyle.Render("  last: " + item.ReservedBy)
		}
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m boardModel) renderCatalog() string {
	if !m.catalogLoaded {
		return statusStyle.Render("loading catalog...")
	}
	if len(m.catalog) == 0 {
		return statusStyle.Render("catalog unavailable")
	}

	var b strings.Builder
	for i, item := range m.catalog {
		b.WriteString(m.renderRow(i, item.Name))
	}
	return b.String()
}

func (m boardModel) renderRow(index int, line string) string {
	if index == m.cursor {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m boardModel) renderForm() string {
	var title string
	switch m.form {
	case formNewRequest:
		title = "New request"
	case formNewDuplicate:
		title = "New duplicate item"
	case formResupply:
		title = "Set quantity"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	if m.form != formResupply {
		b.WriteString(m.nameInput.View() + "\n")
	}
	b.WriteString(m.qtyInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
	return b.String()
}

func (m boardModel) helpLine() string {
	switch m.tab {
	case tabRequests:
		return "n: new • v: validate • d: delete • g: refresh • tab: next view • o: logout • q: quit"
	case tabDuplicates:
		return "n: new • r: reserve • e: edit qty • d: delete • g: refresh • tab: next view • o: logout • q: quit"
	default:
		return "tab: next view • o: logout • q: quit"
	}
}

func (m boardModel) tabLength() int {
	switch m.tab {
	case tabRequests:
		return len(m.requests)
	case tabDuplicates:
		return len(m.duplicates)
	default:
		return len(m.catalog)
	}
}

func (m *boardModel) clampCursor() {
	if max := m.tabLength() - 1; m.cursor > max {
		if max < 0 {
			m.cursor = 0
		} else {
			m.cursor = max
		}
	}
}

func (m boardModel) selectedRequest() (models.Request, bool) {
	if m.cursor < 0 || m.cursor >= len(m.requests) {
		return models.Request{}, false
	}
	return m.requests[m.cursor], true
}

func (m boardModel) selectedDuplicate() (models.DuplicateItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.duplicates) {
		return models.DuplicateItem{}, false
	}
	return m.duplicates[m.cursor], true
}

func (m boardModel) cmdMirrorTick() tea.Cmd {
	return tea.Tick(mirrorTickInterval, func(time.Time) tea.Msg {
		return mirrorTickMsg{}
	})
}

func (m boardModel) cmdRefreshAll() tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{err: ledger.RefreshAll(ctx)}
	}
}

func (m boardModel) cmdCreateRequest(item string, quantity int) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		_, err := ledger.CreateRequest(ctx, item, quantity)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdValidateRequest(id string) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		_, err := ledger.ValidateRequest(ctx, id)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdDeleteRequest(id string) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{err: ledger.DeleteRequest(ctx, id)}
	}
}

func (m boardModel) cmdCreateDuplicate(item string, quantity int) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		_, err := ledger.CreateDuplicate(ctx, item, quantity)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdReserveDuplicate(id string) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		_, err := ledger.ReserveDuplicate(ctx, id)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdResupplyDuplicate(id string, quantity int) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		_, err := ledger.ResupplyDuplicate(ctx, id, quantity)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdLoadCatalog() tea.Cmd {
	catalog := m.services.CatalogService
	ctx := m.ctx
	return func() tea.Msg {
		return catalogLoadedMsg{items: catalog.Preview(ctx)}
	}
}

func (m boardModel) cmdDeleteDuplicate(id string) tea.Cmd {
	ledger := m.services.LedgerService
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{err: ledger.DeleteDuplicate(ctx, id)}
	}
}
