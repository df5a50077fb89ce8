package domain

import "time"

// MainWindowID is the label of the single top-level window.
const MainWindowID = "main"

// WindowVisibility is the main window's visibility.
type WindowVisibility int

const (
	WindowVisible WindowVisibility = iota
	WindowHidden
)

func (v WindowVisibility) String() string {
	switch v {
	case WindowVisible:
		return "visible"
	case WindowHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// MenuItemID identifies a tray menu entry. Unknown ids are valid and ignored.
type MenuItemID string

const (
	MenuItemShow MenuItemID = "show"
	MenuItemHide MenuItemID = "hide"
	MenuItemQuit MenuItemID = "quit"
)

// TrayMenuLayout is the display order of the tray menu. A separator
// precedes MenuItemQuit.
var TrayMenuLayout = []MenuItemID{MenuItemShow, MenuItemHide, MenuItemQuit}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

type TrayAction int

const (
	TrayActionClick TrayAction = iota
	TrayActionDoubleClick
)

func (a TrayAction) String() string {
	switch a {
	case TrayActionClick:
		return "click"
	case TrayActionDoubleClick:
		return "double_click"
	default:
		return "unknown"
	}
}

// TrayIconEvent is a mouse event on the tray icon.
type TrayIconEvent struct {
	Button MouseButton
	Action TrayAction
}

// Setting is a persisted key/value pair written by the frontend.
type Setting struct {
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Setting keys read by the shell itself
const (
	// SettingKeyUpdateCheckHours is the background update check interval;
	// "0" disables the check.
	SettingKeyUpdateCheckHours = "update_check_interval_hours"
)
