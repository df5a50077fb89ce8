package desktop

import (
	"context"
	"sync"

	"github.com/proinvestix/desktop/internal/domain"
	"github.com/proinvestix/desktop/internal/lifecycle"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// mainWindow drives the Wails main window through the runtime context.
// The Wails runtime reports no errors for these calls.
type mainWindow struct {
	ctx context.Context
}

func (w mainWindow) Show() error {
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
	return nil
}

func (w mainWindow) Hide() error {
	runtime.WindowHide(w.ctx)
	return nil
}

// Focus raises the window above others; Wails v2 has no direct focus call.
func (w mainWindow) Focus() error {
	runtime.WindowSetAlwaysOnTop(w.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.ctx, false)
	return nil
}

// windowRegistry resolves the main window between Startup and Shutdown.
type windowRegistry struct {
	mu   sync.RWMutex
	ctx  context.Context
	open func(ctx context.Context) lifecycle.Window
}

func newWindowRegistry() *windowRegistry {
	return &windowRegistry{
		open: func(ctx context.Context) lifecycle.Window { return mainWindow{ctx: ctx} },
	}
}

func (r *windowRegistry) attach(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = ctx
}

func (r *windowRegistry) detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = nil
}

func (r *windowRegistry) Resolve(id string) (lifecycle.Window, bool) {
	if id != domain.MainWindowID {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ctx == nil {
		return nil, false
	}
	return r.open(r.ctx), true
}
