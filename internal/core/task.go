package core

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/proinvestix/desktop/internal/domain"
	"github.com/proinvestix/desktop/internal/updater"
)

const (
	defaultUpdateCheckHours = 24
	defaultInitialDelay     = 30 * time.Second
	// how often a disabled check looks at the setting again
	disabledRecheck = 1 * time.Hour
)

type UpdateSource interface {
	Check(ctx context.Context) (*updater.UpdateResult, error)
}

type Notifier interface {
	Notify(title, body string) error
}

type SettingReader interface {
	Get(key string) (string, error)
}

// BackgroundTaskDeps wires the periodic jobs.
type BackgroundTaskDeps struct {
	Updates  UpdateSource
	Notifier Notifier
	Settings SettingReader
	// Notice builds the notification text for an available release
	Notice func(result *updater.UpdateResult) (title, body string)
	// InitialDelay defaults to 30s
	InitialDelay time.Duration

	lastNotified string
}

// StartBackgroundTasks runs the periodic update check until ctx is done.
func StartBackgroundTasks(ctx context.Context, deps BackgroundTaskDeps) {
	if deps.InitialDelay <= 0 {
		deps.InitialDelay = defaultInitialDelay
	}

	go func() {
		if !sleep(ctx, deps.InitialDelay) {
			return
		}
		for {
			interval := deps.updateCheckInterval()
			if interval <= 0 {
				if !sleep(ctx, disabledRecheck) {
					return
				}
				continue
			}
			deps.runUpdateCheck(ctx)
			if !sleep(ctx, interval) {
				return
			}
		}
	}()

	log.Println("[Task] Background tasks started (update check)")
}

// updateCheckInterval reads the interval setting; invalid values fall back
// to the default.
func (d *BackgroundTaskDeps) updateCheckInterval() time.Duration {
	hours := defaultUpdateCheckHours
	if d.Settings != nil {
		if val, err := d.Settings.Get(domain.SettingKeyUpdateCheckHours); err == nil && val != "" {
			if h, err := strconv.Atoi(val); err == nil {
				hours = h
			} else {
				log.Printf("[Task] Ignoring invalid %s=%q", domain.SettingKeyUpdateCheckHours, val)
			}
		}
	}
	return time.Duration(hours) * time.Hour
}

// runUpdateCheck notifies once per newly available version and reports
// whether it did.
func (d *BackgroundTaskDeps) runUpdateCheck(ctx context.Context) bool {
	result, err := d.Updates.Check(ctx)
	if err != nil {
		log.Printf("[Task] Update check failed: %v", err)
		return false
	}
	if !result.Available || result.LatestVersion == d.lastNotified {
		return false
	}

	title, body := "Update available", "Version "+result.LatestVersion+" is available"
	if d.Notice != nil {
		title, body = d.Notice(result)
	}
	if err := d.Notifier.Notify(title, body); err != nil {
		log.Printf("[Task] Failed to show update notification: %v", err)
		return false
	}
	d.lastNotified = result.LatestVersion
	log.Printf("[Task] Notified about version %s", result.LatestVersion)
	return true
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
