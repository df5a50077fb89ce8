// Package lifecycle keeps the main window's visibility in step with tray
// menu selections, tray icon clicks and window close requests.
package lifecycle

import (
	"log"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/proinvestix/desktop/internal/domain"
)

// Window is a handle to a host toolkit window.
type Window interface {
	Show() error
	Hide() error
	Focus() error
}

// WindowResolver looks up a window by label. It reports false when the
// window has not been created yet or is already gone.
type WindowResolver interface {
	Resolve(id string) (Window, bool)
}

// ResolverFunc adapts a plain function to WindowResolver.
type ResolverFunc func(id string) (Window, bool)

func (f ResolverFunc) Resolve(id string) (Window, bool) {
	return f(id)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRegisterer registers the controller metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Controller) {
		c.metrics = newMetrics(reg)
	}
}

// WithStateListener installs a callback that observes every state change.
// It runs with the controller lock held and must not call back into it.
func WithStateListener(fn func(domain.WindowVisibility)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller keeps the main window and the tray in step.
type Controller struct {
	resolver WindowResolver
	exit     func(code int)
	metrics  *metrics
	onChange func(domain.WindowVisibility)

	// systray callbacks and the Wails close hook arrive on different
	// goroutines, so every handler runs under mu.
	mu    sync.Mutex
	state domain.WindowVisibility
}

// New creates a controller. The initial state is Visible.
func New(resolver WindowResolver, exit func(code int), opts ...Option) *Controller {
	c := &Controller{
		resolver: resolver,
		exit:     exit,
		state:    domain.WindowVisible,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = newMetrics(nil)
	}
	return c
}

// State returns the current visibility of the main window.
func (c *Controller) State() domain.WindowVisibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnTrayMenuSelect handles a tray menu selection.
func (c *Controller) OnTrayMenuSelect(id domain.MenuItemID) {
	c.metrics.event("menu", string(id))

	switch id {
	case domain.MenuItemQuit:
		log.Println("[Lifecycle] Quit selected, exiting")
		c.exit(0)
	case domain.MenuItemShow:
		c.mu.Lock()
		defer c.mu.Unlock()
		c.showLocked()
	case domain.MenuItemHide:
		c.mu.Lock()
		defer c.mu.Unlock()
		c.hideLocked()
	default:
		log.Printf("[Lifecycle] Ignoring unknown tray menu item %q", id)
	}
}

// OnTrayIconEvent handles a tray icon event. Only a left click is handled;
// everything else is left to the host.
func (c *Controller) OnTrayIconEvent(ev domain.TrayIconEvent) {
	c.metrics.event("icon", ev.Button.String()+"_"+ev.Action.String())

	if ev.Button != domain.MouseButtonLeft || ev.Action != domain.TrayActionClick {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showLocked()
}

// OnWindowCloseRequested hides the main window instead of closing it. The
// result is always true: the host must not close the window.
func (c *Controller) OnWindowCloseRequested() bool {
	c.metrics.event("window", "close_requested")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.hideLocked()
	return true
}

func (c *Controller) showLocked() {
	w, ok := c.resolver.Resolve(domain.MainWindowID)
	if !ok {
		log.Printf("[Lifecycle] Window %q not available, show skipped", domain.MainWindowID)
		return
	}
	if err := w.Show(); err != nil {
		log.Printf("[Lifecycle] Failed to show window: %v", err)
		return
	}
	c.setLocked(domain.WindowVisible)
	if err := w.Focus(); err != nil {
		log.Printf("[Lifecycle] Failed to focus window: %v", err)
	}
}

func (c *Controller) hideLocked() {
	w, ok := c.resolver.Resolve(domain.MainWindowID)
	if !ok {
		log.Printf("[Lifecycle] Window %q not available, hide skipped", domain.MainWindowID)
		return
	}
	if err := w.Hide(); err != nil {
		log.Printf("[Lifecycle] Failed to hide window: %v", err)
		return
	}
	c.setLocked(domain.WindowHidden)
}

func (c *Controller) setLocked(next domain.WindowVisibility) {
	prev := c.state
	c.state = next
	if prev == next {
		return
	}
	c.metrics.transition(prev, next)
	if c.onChange != nil {
		c.onChange(next)
	}
}
