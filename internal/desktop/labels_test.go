package desktop

import (
	"testing"

	"github.com/proinvestix/desktop/internal/domain"
)

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		locale   string
		wantShow string
	}{
		{"nl", "Toon venster"},
		{"nl-BE", "Toon venster"},
		{"en", "Show window"},
		{"en-US", "Show window"},
		{"en-GB,nl;q=0.5", "Show window"},
		{"fr-FR", "Toon venster"},
		{"", "Toon venster"},
		{"not a locale", "Toon venster"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got := LabelsFor(tt.locale).Items[domain.MenuItemShow].Title
			if got != tt.wantShow {
				t.Errorf("LabelsFor(%q) show = %q, want %q", tt.locale, got, tt.wantShow)
			}
		})
	}
}

func TestMenuEntriesLayout(t *testing.T) {
	entries := MenuEntries(LabelsFor("nl"))

	want := []struct {
		id        domain.MenuItemID
		title     string
		separator bool
	}{
		{domain.MenuItemShow, "Toon venster", false},
		{domain.MenuItemHide, "Verberg", false},
		{domain.MenuItemQuit, "Afsluiten", true},
	}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		e := entries[i]
		if e.ID != w.id || e.Title != w.title || e.SeparatorBefore != w.separator {
			t.Errorf("entries[%d] = %+v, want id=%s title=%q separator=%v", i, e, w.id, w.title, w.separator)
		}
	}
}

func TestTooltip(t *testing.T) {
	l := LabelsFor("en")
	if got := l.Tooltip(domain.WindowVisible); got != l.TooltipVisible {
		t.Errorf("Tooltip(visible) = %q", got)
	}
	if got := l.Tooltip(domain.WindowHidden); got != l.TooltipHidden {
		t.Errorf("Tooltip(hidden) = %q", got)
	}
}

func TestUpdateNotice(t *testing.T) {
	title, body := LabelsFor("nl").UpdateNotice("1.4.0")
	if title != "Update beschikbaar" || body != "ProInvestiX 1.4.0 is beschikbaar." {
		t.Errorf("nl notice = %q / %q", title, body)
	}
	title, body = LabelsFor("en").UpdateNotice("1.4.0")
	if title != "Update available" || body != "ProInvestiX 1.4.0 is available." {
		t.Errorf("en notice = %q / %q", title, body)
	}
}
