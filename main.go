package main

import (
	"context"
	"embed"
	"log"
	goruntime "runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/proinvestix/desktop/internal/config"
	"github.com/proinvestix/desktop/internal/desktop"
	"github.com/proinvestix/desktop/internal/domain"
	"github.com/proinvestix/desktop/internal/repository/cached"
	"github.com/proinvestix/desktop/internal/repository/gormdb"
	"github.com/proinvestix/desktop/internal/updater"
	"github.com/proinvestix/desktop/internal/version"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var appIcon []byte

//go:embed build/trayicon.ico
var trayIconICO []byte

const appName = "ProInvestiX"

func openDB(cfg *config.Config) (*gormdb.DB, error) {
	if cfg.DSN != "" {
		log.Printf("Using database DSN from configuration")
		return gormdb.NewDBWithDSN(cfg.DSN)
	}
	return gormdb.NewDB(cfg.DBPath())
}

func trayIcon() []byte {
	if goruntime.GOOS == "windows" {
		return trayIconICO
	}
	return appIcon
}

func main() {
	log.Printf("%s desktop %s (%s)", appName, version.Full(), version.Platform())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	settingRepo := cached.NewSettingRepository(gormdb.NewSettingRepository(db))
	if err := settingRepo.Load(); err != nil {
		log.Printf("Warning: Failed to load settings from database: %v", err)
	}

	app := desktop.NewApp(desktop.Options{
		Config:     cfg,
		Settings:   settingRepo,
		Updates:    updater.NewChecker(cfg.UpdateURL, version.Version),
		Notifier:   desktop.NewNotifier(appName, appIcon),
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
		Icon:       trayIcon(),
	})

	// macOS has no tray icon, so the app menu carries the same items
	var appMenu *menu.Menu
	if goruntime.GOOS == "darwin" {
		labels := desktop.LabelsFor(cfg.Locale)
		appMenu = menu.NewMenu()

		// Replaces menu.AppMenu(): its Quit goes through OnBeforeClose and
		// would only hide the window.
		windowMenu := appMenu.AddSubmenu(labels.Title)
		windowMenu.AddText(labels.Items[domain.MenuItemShow].Title, nil, func(_ *menu.CallbackData) {
			app.ShowWindow()
		})
		windowMenu.AddText(labels.Items[domain.MenuItemHide].Title, nil, func(_ *menu.CallbackData) {
			app.HideWindow()
		})
		windowMenu.AddSeparator()
		windowMenu.AddText(labels.Items[domain.MenuItemQuit].Title, keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
			app.ExitApp()
		})

		appMenu.Append(menu.EditMenu())
	}

	err = wails.Run(&options.App{
		Title:     appName + " Enterprise",
		Width:     1280,
		Height:    800,
		MinWidth:  1024,
		MinHeight: 700,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnBeforeClose:    app.BeforeClose,
		OnShutdown: func(ctx context.Context) {
			app.Shutdown(ctx)
			if err := db.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		},
		Bind: []interface{}{
			app,
		},
		Menu: appMenu,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               "com.proinvestix.desktop",
			OnSecondInstanceLaunch: app.SecondInstanceLaunch,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Mac: &mac.Options{
			TitleBar:   mac.TitleBarDefault(),
			Appearance: mac.NSAppearanceNameDarkAqua,
			About: &mac.AboutInfo{
				Title:   appName + " Enterprise",
				Message: "Desktop " + version.Info(),
				Icon:    appIcon,
			},
		},
	})

	if err != nil {
		log.Fatal("Error:", err)
	}
}
