package desktop

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/proinvestix/desktop/internal/config"
	"github.com/proinvestix/desktop/internal/core"
	"github.com/proinvestix/desktop/internal/domain"
	"github.com/proinvestix/desktop/internal/lifecycle"
	"github.com/proinvestix/desktop/internal/repository"
	"github.com/proinvestix/desktop/internal/updater"
	"github.com/proinvestix/desktop/internal/version"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

const installTimeout = 10 * time.Minute

var errNotStarted = errors.New("desktop runtime not started")

// TrayHandler receives tray input.
type TrayHandler interface {
	OnTrayMenuSelect(id domain.MenuItemID)
	OnTrayIconEvent(ev domain.TrayIconEvent)
}

// UpdateChecker is the part of the updater used by the app.
type UpdateChecker interface {
	Check(ctx context.Context) (*updater.UpdateResult, error)
	DownloadAsset(ctx context.Context, asset *updater.Asset) (string, error)
}

// UpdateInfo is returned to the frontend by CheckForUpdates.
type UpdateInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// FileFilter restricts file dialogs, e.g. {Name: "PDF", Extensions: ["pdf"]}.
type FileFilter struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

type Options struct {
	Config     *config.Config
	Settings   repository.SettingRepository
	Updates    UpdateChecker
	Notifier   Notifier
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Icon       []byte
	// Exit terminates the process; defaults to os.Exit
	Exit func(code int)
}

// App is bound into Wails; its exported methods are the frontend commands.
type App struct {
	ctx context.Context

	cfg        *config.Config
	settings   repository.SettingRepository
	updates    UpdateChecker
	notifier   Notifier
	windows    *windowRegistry
	controller *lifecycle.Controller
	labels     Labels
	tray       *TrayManager
	metrics    *core.ManagedServer
	exitFn     func(code int)
}

func NewApp(opts Options) *App {
	labels := LabelsFor(opts.Config.Locale)
	a := &App{
		cfg:      opts.Config,
		settings: opts.Settings,
		updates:  opts.Updates,
		notifier: opts.Notifier,
		windows:  newWindowRegistry(),
		labels:   labels,
		tray:     NewTrayManager(labels, opts.Icon),
		exitFn:   opts.Exit,
	}
	if a.exitFn == nil {
		a.exitFn = os.Exit
	}

	lcOpts := []lifecycle.Option{lifecycle.WithStateListener(a.tray.SetVisibility)}
	if opts.Registerer != nil {
		lcOpts = append(lcOpts, lifecycle.WithRegisterer(opts.Registerer))
	}
	a.controller = lifecycle.New(a.windows, a.exit, lcOpts...)

	if opts.Config.MetricsAddr != "" {
		a.metrics = core.NewManagedServer(&core.ServerConfig{
			Addr:        opts.Config.MetricsAddr,
			Gatherer:    opts.Gatherer,
			EnablePprof: opts.Config.Pprof,
		})
	}
	return a
}

// Startup is called by Wails once the window exists
func (a *App) Startup(ctx context.Context) {
	log.Println("[App] Startup")
	a.ctx = ctx
	a.windows.attach(ctx)
	a.tray.Start(a.controller)

	if a.metrics != nil {
		if err := a.metrics.Start(ctx); err != nil {
			log.Printf("[App] Failed to start metrics server: %v", err)
		}
	}

	if a.updates != nil && a.notifier != nil {
		core.StartBackgroundTasks(ctx, core.BackgroundTaskDeps{
			Updates:  a.updates,
			Notifier: a.notifier,
			Settings: a.settings,
			Notice: func(result *updater.UpdateResult) (string, string) {
				return a.labels.UpdateNotice(result.LatestVersion)
			},
		})
	}
}

func (a *App) DomReady(ctx context.Context) {
	log.Println("[App] DOM ready")
}

// BeforeClose hides the window instead of closing it. Returning true
// tells Wails to keep the window.
func (a *App) BeforeClose(ctx context.Context) bool {
	log.Println("[App] Window close requested - hiding to tray")
	return a.controller.OnWindowCloseRequested()
}

func (a *App) Shutdown(ctx context.Context) {
	log.Println("[App] Shutdown")
	a.windows.detach()
	a.tray.Stop()
	if a.metrics != nil {
		if err := a.metrics.Stop(ctx); err != nil {
			log.Printf("[App] Failed to stop metrics server: %v", err)
		}
	}
}

// SecondInstanceLaunch brings the running window forward when the app is
// started again; it behaves like a left click on the tray icon.
func (a *App) SecondInstanceLaunch(data options.SecondInstanceData) {
	log.Printf("[App] Second instance launched with args %v", data.Args)
	a.controller.OnTrayIconEvent(domain.TrayIconEvent{Button: domain.MouseButtonLeft, Action: domain.TrayActionClick})
}

func (a *App) exit(code int) {
	log.Printf("[App] Exiting with code %d", code)
	a.tray.Stop()
	a.exitFn(code)
}

// ==================== Commands ====================

func (a *App) GetVersion() string {
	return version.Version
}

func (a *App) GetPlatform() string {
	return version.Platform()
}

func (a *App) GetAppDataDir() (string, error) {
	if a.cfg.DataDir == "" {
		return "", errors.New("app data directory not configured")
	}
	return a.cfg.DataDir, nil
}

func (a *App) ShowNotification(title, body string) error {
	if err := a.notifier.Notify(title, body); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	return nil
}

func (a *App) StoreSetting(key, value string) error {
	if err := a.settings.Set(key, value); err != nil {
		return fmt.Errorf("store setting %q: %w", key, err)
	}
	return nil
}

// GetSetting returns nil when the key has never been stored.
func (a *App) GetSetting(key string) (*string, error) {
	value, err := a.settings.Get(key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get setting %q: %w", key, err)
	}
	return &value, nil
}

// CheckForUpdates reports no update when the check fails.
func (a *App) CheckForUpdates() *UpdateInfo {
	result, err := a.updates.Check(a.context())
	if err != nil {
		log.Printf("[App] Update check failed: %v", err)
		return &UpdateInfo{Available: false}
	}
	if !result.Available {
		return &UpdateInfo{Available: false}
	}
	return &UpdateInfo{Available: true, Version: result.LatestVersion, Notes: result.Notes}
}

// InstallUpdate downloads the release binary for this platform, swaps it in
// and relaunches. It is a no-op when no update is available.
func (a *App) InstallUpdate() error {
	ctx, cancel := context.WithTimeout(a.context(), installTimeout)
	defer cancel()

	result, err := a.updates.Check(ctx)
	if err != nil {
		return fmt.Errorf("check for update: %w", err)
	}
	if !result.Available || result.Release == nil {
		return nil
	}

	asset := updater.FindAsset(result.Release, updater.AssetName())
	if asset == nil {
		return fmt.Errorf("release %s has no asset %s", result.LatestVersion, updater.AssetName())
	}

	log.Printf("[App] Installing update %s", result.LatestVersion)
	tmpPath, err := a.updates.DownloadAsset(ctx, asset)
	if err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := updater.ReplaceBinary(exe, tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := updater.Relaunch(exe); err != nil {
		return err
	}
	a.exit(0)
	return nil
}

// ShowWindow and HideWindow mirror the tray menu items for the app menu
// and the frontend.
func (a *App) ShowWindow() {
	a.controller.OnTrayMenuSelect(domain.MenuItemShow)
}

func (a *App) HideWindow() {
	a.controller.OnTrayMenuSelect(domain.MenuItemHide)
}

// ExitApp quits on the user's behalf, same as the tray quit item.
func (a *App) ExitApp() {
	a.controller.OnTrayMenuSelect(domain.MenuItemQuit)
}

func (a *App) OpenURL(url string) error {
	if a.ctx == nil {
		return errNotStarted
	}
	runtime.BrowserOpenURL(a.ctx, url)
	return nil
}

func (a *App) ShowMessage(title, message string) error {
	return a.messageDialog(runtime.InfoDialog, title, message)
}

func (a *App) ShowError(title, message string) error {
	return a.messageDialog(runtime.ErrorDialog, title, message)
}

func (a *App) ShowConfirm(title, message string) (bool, error) {
	if a.ctx == nil {
		return false, errNotStarted
	}
	answer, err := runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    runtime.QuestionDialog,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return false, err
	}
	return isAffirmative(answer), nil
}

// OpenFileDialog returns nil when the user cancels.
func (a *App) OpenFileDialog(filters []FileFilter) (*string, error) {
	if a.ctx == nil {
		return nil, errNotStarted
	}
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Filters: toRuntimeFilters(filters),
	})
	return optionalPath(path, err)
}

// SaveFileDialog returns nil when the user cancels.
func (a *App) SaveFileDialog(defaultPath string, filters []FileFilter) (*string, error) {
	if a.ctx == nil {
		return nil, errNotStarted
	}
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: defaultPath,
		Filters:         toRuntimeFilters(filters),
	})
	return optionalPath(path, err)
}

func (a *App) messageDialog(kind runtime.DialogType, title, message string) error {
	if a.ctx == nil {
		return errNotStarted
	}
	_, err := runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    kind,
		Title:   title,
		Message: message,
	})
	return err
}

func (a *App) context() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

func toRuntimeFilters(filters []FileFilter) []runtime.FileFilter {
	if len(filters) == 0 {
		return nil
	}
	out := make([]runtime.FileFilter, 0, len(filters))
	for _, f := range filters {
		patterns := make([]string, 0, len(f.Extensions))
		for _, ext := range f.Extensions {
			patterns = append(patterns, "*."+strings.TrimPrefix(ext, "."))
		}
		out = append(out, runtime.FileFilter{
			DisplayName: f.Name,
			Pattern:     strings.Join(patterns, ";"),
		})
	}
	return out
}

func optionalPath(path string, err error) (*string, error) {
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return &path, nil
}

// isAffirmative maps the platform-specific answer of a question dialog.
func isAffirmative(answer string) bool {
	switch strings.ToLower(answer) {
	case "yes", "ok":
		return true
	default:
		return false
	}
}
