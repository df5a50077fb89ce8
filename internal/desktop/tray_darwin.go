//go:build darwin

package desktop

import (
	"log"

	"github.com/proinvestix/desktop/internal/domain"
)

// TrayManager is a no-op on macOS: the status item conflicts with the Wails
// AppDelegate. The app menu and a second launch restore the window instead.
type TrayManager struct{}

func NewTrayManager(labels Labels, icon []byte) *TrayManager {
	return &TrayManager{}
}

func (t *TrayManager) Start(handler TrayHandler) {
	log.Println("[Tray] System tray disabled on macOS")
}

func (t *TrayManager) Stop() {}

func (t *TrayManager) SetVisibility(v domain.WindowVisibility) {}
