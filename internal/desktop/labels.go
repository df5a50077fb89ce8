package desktop

import (
	"fmt"

	"github.com/proinvestix/desktop/internal/domain"
	"golang.org/x/text/language"
)

// Labels holds the user-visible tray strings for one language.
type Labels struct {
	Tag language.Tag

	Title          string
	TooltipVisible string
	TooltipHidden  string

	Items map[domain.MenuItemID]ItemLabel

	UpdateTitle string
	// UpdateBody takes the new version
	UpdateBody string
}

type ItemLabel struct {
	Title   string
	Tooltip string
}

var dutchLabels = Labels{
	Tag:            language.Dutch,
	Title:          "ProInvestiX",
	TooltipVisible: "ProInvestiX Enterprise",
	TooltipHidden:  "ProInvestiX Enterprise (op de achtergrond)",
	Items: map[domain.MenuItemID]ItemLabel{
		domain.MenuItemShow: {Title: "Toon venster", Tooltip: "Hoofdvenster tonen"},
		domain.MenuItemHide: {Title: "Verberg", Tooltip: "Hoofdvenster verbergen"},
		domain.MenuItemQuit: {Title: "Afsluiten", Tooltip: "ProInvestiX afsluiten"},
	},
	UpdateTitle: "Update beschikbaar",
	UpdateBody:  "ProInvestiX %s is beschikbaar.",
}

var englishLabels = Labels{
	Tag:            language.English,
	Title:          "ProInvestiX",
	TooltipVisible: "ProInvestiX Enterprise",
	TooltipHidden:  "ProInvestiX Enterprise (running in background)",
	Items: map[domain.MenuItemID]ItemLabel{
		domain.MenuItemShow: {Title: "Show window", Tooltip: "Show the main window"},
		domain.MenuItemHide: {Title: "Hide", Tooltip: "Hide the main window"},
		domain.MenuItemQuit: {Title: "Quit", Tooltip: "Quit ProInvestiX"},
	},
	UpdateTitle: "Update available",
	UpdateBody:  "ProInvestiX %s is available.",
}

// Dutch comes first so it is the fallback for unsupported locales.
var labelMatcher = language.NewMatcher([]language.Tag{language.Dutch, language.English})

// LabelsFor picks the tray labels for a BCP 47 locale such as "en-US".
func LabelsFor(locale string) Labels {
	tag, _ := language.MatchStrings(labelMatcher, locale)
	base, _ := tag.Base()
	if base.String() == "en" {
		return englishLabels
	}
	return dutchLabels
}

// Tooltip returns the tray tooltip for the given window state.
func (l Labels) Tooltip(v domain.WindowVisibility) string {
	if v == domain.WindowHidden {
		return l.TooltipHidden
	}
	return l.TooltipVisible
}

// MenuEntry is one tray menu row.
type MenuEntry struct {
	ID              domain.MenuItemID
	Title           string
	Tooltip         string
	SeparatorBefore bool
}

// MenuEntries lays out the tray menu: show, hide, separator, quit.
func MenuEntries(l Labels) []MenuEntry {
	entries := make([]MenuEntry, 0, len(domain.TrayMenuLayout))
	for _, id := range domain.TrayMenuLayout {
		label := l.Items[id]
		entries = append(entries, MenuEntry{
			ID:              id,
			Title:           label.Title,
			Tooltip:         label.Tooltip,
			SeparatorBefore: id == domain.MenuItemQuit,
		})
	}
	return entries
}

// UpdateNotice is the notification text for a newly available version.
func (l Labels) UpdateNotice(version string) (title, body string) {
	return l.UpdateTitle, fmt.Sprintf(l.UpdateBody, version)
}
