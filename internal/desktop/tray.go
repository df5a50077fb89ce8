//go:build !darwin

package desktop

import (
	"log"
	"sync"

	"github.com/energye/systray"
	"github.com/proinvestix/desktop/internal/domain"
)

// TrayManager owns the system tray icon and menu.
type TrayManager struct {
	labels Labels
	icon   []byte

	mu      sync.Mutex
	started bool
	ready   bool
	state   domain.WindowVisibility
}

func NewTrayManager(labels Labels, icon []byte) *TrayManager {
	return &TrayManager{labels: labels, icon: icon, state: domain.WindowVisible}
}

// Start runs the tray loop in the background and routes clicks to handler.
func (t *TrayManager) Start(handler TrayHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	go systray.Run(func() { t.onReady(handler) }, t.onExit)
}

// Stop removes the tray icon. It is a no-op if Start was never called.
func (t *TrayManager) Stop() {
	t.mu.Lock()
	started := t.started
	t.started = false
	t.mu.Unlock()
	if started {
		systray.Quit()
	}
}

func (t *TrayManager) onReady(handler TrayHandler) {
	log.Println("[Tray] Initializing system tray...")

	if len(t.icon) > 0 {
		systray.SetIcon(t.icon)
	}
	systray.SetTitle(t.labels.Title)

	systray.SetOnClick(func(menu systray.IMenu) {
		handler.OnTrayIconEvent(domain.TrayIconEvent{Button: domain.MouseButtonLeft, Action: domain.TrayActionClick})
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		handler.OnTrayIconEvent(domain.TrayIconEvent{Button: domain.MouseButtonRight, Action: domain.TrayActionClick})
		if err := menu.ShowMenu(); err != nil {
			log.Printf("[Tray] Failed to open menu: %v", err)
		}
	})

	for _, entry := range MenuEntries(t.labels) {
		if entry.SeparatorBefore {
			systray.AddSeparator()
		}
		id := entry.ID
		item := systray.AddMenuItem(entry.Title, entry.Tooltip)
		item.Click(func() {
			log.Printf("[Tray] Menu item %q clicked", id)
			handler.OnTrayMenuSelect(id)
		})
	}

	t.mu.Lock()
	t.ready = true
	systray.SetTooltip(t.labels.Tooltip(t.state))
	t.mu.Unlock()
}

func (t *TrayManager) onExit() {
	t.mu.Lock()
	t.ready = false
	t.mu.Unlock()
	log.Println("[Tray] System tray exited")
}

// SetVisibility refreshes the tooltip for the window state.
func (t *TrayManager) SetVisibility(v domain.WindowVisibility) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = v
	if t.ready {
		systray.SetTooltip(t.labels.Tooltip(v))
	}
}
