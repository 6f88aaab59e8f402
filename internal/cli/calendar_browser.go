package cli

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/cli/formatter"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
	"github.com/alexanderramin/cropcal/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type browserKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Today    key.Binding
	Category key.Binding
	Quit     key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Category, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var browserKeys = browserKeyMap{
	Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "prev month")),
	Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "next month")),
	Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
	Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// monthLoadedMsg carries the result of a calendar query.
type monthLoadedMsg struct {
	resp *contract.CalendarResponse
	err  error
}

// calendarBrowser pages through planting months one at a time.
type calendarBrowser struct {
	ctx      context.Context
	calendar service.CalendarService
	today    *civil.Date

	year     int
	month    time.Month
	category domain.CropCategory

	resp    *contract.CalendarResponse
	err     error
	loading bool
	help    help.Model
}

// newCalendarBrowser starts on year/month; zero values mean the current month.
func newCalendarBrowser(ctx context.Context, calendar service.CalendarService, year int, month time.Month, category domain.CropCategory, today *civil.Date) *calendarBrowser {
	return &calendarBrowser{
		ctx:      ctx,
		calendar: calendar,
		today:    today,
		year:     year,
		month:    month,
		category: category,
		loading:  true,
		help:     help.New(),
	}
}

func (b *calendarBrowser) Init() tea.Cmd {
	return b.load()
}

func (b *calendarBrowser) load() tea.Cmd {
	req := contract.CalendarRequest{
		Year:     b.year,
		Month:    b.month,
		Category: b.category,
		Today:    b.today,
	}
	return func() tea.Msg {
		resp, err := b.calendar.Month(b.ctx, req)
		return monthLoadedMsg{resp: resp, err: err}
	}
}

func (b *calendarBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		b.loading = false
		b.err = msg.err
		if msg.err == nil {
			b.resp = msg.resp
			b.year, b.month = msg.resp.Year, msg.resp.Month
		}
		return b, nil

	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return b, tea.Quit
		case b.loading || b.year == 0:
			// Navigation needs a resolved month.
			return b, nil
		case key.Matches(msg, browserKeys.Prev):
			b.shift(-1)
		case key.Matches(msg, browserKeys.Next):
			b.shift(1)
		case key.Matches(msg, browserKeys.Today):
			b.year, b.month = 0, 0
		case key.Matches(msg, browserKeys.Category):
			b.category = nextCategory(b.category)
		default:
			return b, nil
		}
		b.loading = true
		return b, b.load()
	}
	return b, nil
}

func (b *calendarBrowser) shift(months int) {
	first := time.Date(b.year, b.month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	b.year, b.month = first.Year(), first.Month()
}

// nextCategory cycles all crops, then each category in display order.
func nextCategory(c domain.CropCategory) domain.CropCategory {
	if c == "" {
		return domain.Categories[0]
	}
	for i, cat := range domain.Categories {
		if cat == c && i+1 < len(domain.Categories) {
			return domain.Categories[i+1]
		}
	}
	return ""
}

func (b *calendarBrowser) View() string {
	var s strings.Builder
	switch {
	case b.err != nil:
		s.WriteString(formatter.StyleRed.Render("Error: "+b.err.Error()) + "\n")
	case b.resp == nil:
		s.WriteString(formatter.Dim("Loading...") + "\n")
	default:
		s.WriteString(formatter.FormatCalendar(b.resp) + "\n")
	}
	s.WriteString(b.help.View(browserKeys))
	return s.String()
}
