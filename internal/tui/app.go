package tui

import (
	"strava-insights/internal/activity"
	"strava-insights/internal/config"
	"strava-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenStats
	ScreenWeekly
	ScreenTimeOfDay
	ScreenRecords
	ScreenGear
	ScreenMonthly
	ScreenComparison
	ScreenActivities
	ScreenDetail
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	overview   OverviewModel
	stats      StatsModel
	weekly     WeeklyModel
	timeOfDay  TimeOfDayModel
	records    RecordsModel
	gear       GearModel
	monthly    MonthlyModel
	comparison ComparisonModel
	activities ActivitiesModel
	detail     DetailModel
	help       HelpModel

	queries *service.QueryService
	units   Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over an already loaded export
func NewApp(queries *service.QueryService, cfg config.Config) *App {
	units := NewUnits(cfg)

	return &App{
		screen:     ScreenOverview,
		queries:    queries,
		units:      units,
		overview:   NewOverviewModel(queries, units),
		stats:      NewStatsModel(queries, units),
		weekly:     NewWeeklyModel(queries, units),
		timeOfDay:  NewTimeOfDayModel(queries, units),
		records:    NewRecordsModel(queries, units, 0, 0),
		gear:       NewGearModel(queries, units),
		monthly:    NewMonthlyModel(queries, units),
		comparison: NewComparisonModel(queries, units),
		activities: NewActivitiesModel(queries, units),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.overview.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenOverview
			return a, nil
		case "2":
			a.screen = ScreenStats
			return a, nil
		case "3":
			a.screen = ScreenWeekly
			return a, nil
		case "4":
			a.screen = ScreenTimeOfDay
			return a, nil
		case "5":
			a.screen = ScreenRecords
			return a, nil
		case "6":
			a.screen = ScreenGear
			return a, nil
		case "7":
			a.screen = ScreenMonthly
			return a, nil
		case "8":
			a.screen = ScreenComparison
			return a, nil
		case "9":
			a.screen = ScreenActivities
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
			case ScreenDetail:
				a.screen = ScreenActivities
			default:
				a.screen = ScreenOverview
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Scrolling screens track the window themselves
		var m tea.Model
		m, _ = a.records.Update(msg)
		a.records = m.(RecordsModel)
		m, _ = a.detail.Update(msg)
		a.detail = m.(DetailModel)

	case OpenActivityDetailMsg:
		a.detail = NewDetailModel(msg.Activity, a.units, a.width, a.height)
		a.screen = ScreenDetail
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOverview:
		var m tea.Model
		m, cmd = a.overview.Update(msg)
		a.overview = m.(OverviewModel)
	case ScreenStats:
		var m tea.Model
		m, cmd = a.stats.Update(msg)
		a.stats = m.(StatsModel)
	case ScreenWeekly:
		var m tea.Model
		m, cmd = a.weekly.Update(msg)
		a.weekly = m.(WeeklyModel)
	case ScreenTimeOfDay:
		var m tea.Model
		m, cmd = a.timeOfDay.Update(msg)
		a.timeOfDay = m.(TimeOfDayModel)
	case ScreenRecords:
		var m tea.Model
		m, cmd = a.records.Update(msg)
		a.records = m.(RecordsModel)
	case ScreenGear:
		var m tea.Model
		m, cmd = a.gear.Update(msg)
		a.gear = m.(GearModel)
	case ScreenMonthly:
		var m tea.Model
		m, cmd = a.monthly.Update(msg)
		a.monthly = m.(MonthlyModel)
	case ScreenComparison:
		var m tea.Model
		m, cmd = a.comparison.Update(msg)
		a.comparison = m.(ComparisonModel)
	case ScreenActivities:
		var m tea.Model
		m, cmd = a.activities.Update(msg)
		a.activities = m.(ActivitiesModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenOverview:
		content = a.overview.View()
	case ScreenStats:
		content = a.stats.View()
	case ScreenWeekly:
		content = a.weekly.View()
	case ScreenTimeOfDay:
		content = a.timeOfDay.View()
	case ScreenRecords:
		content = a.records.View()
	case ScreenGear:
		content = a.gear.View()
	case ScreenMonthly:
		content = a.monthly.View()
	case ScreenComparison:
		content = a.comparison.View()
	case ScreenActivities:
		content = a.activities.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Strava Export Insights")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Overview", ScreenOverview},
		{"2", "Stats", ScreenStats},
		{"3", "Weekly", ScreenWeekly},
		{"4", "Time", ScreenTimeOfDay},
		{"5", "Records", ScreenRecords},
		{"6", "Gear", ScreenGear},
		{"7", "Monthly", ScreenMonthly},
		{"8", "Compare", ScreenComparison},
		{"9", "Browse", ScreenActivities},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (a.screen == ScreenDetail && item.screen == ScreenActivities)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[?] Help  [q] Quit")

	return navStyle.Render(nav)
}

// OpenActivityDetailMsg asks the app to show one activity's detail screen
type OpenActivityDetailMsg struct {
	Activity activity.Activity
}
