// Package theme derives a complete semantic UI theme from a 20-slot
// terminal palette. The mapper is a pure function: the same palette
// always produces the same document, and every call allocates a fresh
// result, so it is safe to re-run on every edit for live preview.
package theme

import "github.com/ajramos/termtheme/internal/colorspace"

// Role is a semantic UI slot, independent of which source color fills it.
type Role string

const (
	RoleWindowBackground Role = "window-background"
	RolePanelBackground  Role = "panel-background"
	RoleHeaderBackground Role = "header-background"
	RolePopupBackground  Role = "popup-background"
	RoleTabActive        Role = "tab-active"
	RoleTabInactive      Role = "tab-inactive"
	RoleBorder           Role = "border"
	RoleSeparator        Role = "separator"
	RoleTextPrimary      Role = "text-primary"
	RoleTextSecondary    Role = "text-secondary"
	RoleTextDisabled     Role = "text-disabled"
	RoleAccentPrimary    Role = "accent-primary"
	RoleAccentError      Role = "accent-error"
	RoleAccentWarning    Role = "accent-warning"
	RoleAccentSuccess    Role = "accent-success"
	RoleAccentInfo       Role = "accent-info"
	RoleSelection        Role = "selection-highlight"
	RoleSelectionText    Role = "selection-text"
	RoleCursor           Role = "cursor"
)

// allRoles is the fixed role set, in presentation order.
var allRoles = []Role{
	RoleWindowBackground,
	RolePanelBackground,
	RoleHeaderBackground,
	RolePopupBackground,
	RoleTabActive,
	RoleTabInactive,
	RoleBorder,
	RoleSeparator,
	RoleTextPrimary,
	RoleTextSecondary,
	RoleTextDisabled,
	RoleAccentPrimary,
	RoleAccentError,
	RoleAccentWarning,
	RoleAccentSuccess,
	RoleAccentInfo,
	RoleSelection,
	RoleSelectionText,
	RoleCursor,
}

// Roles returns the fixed semantic role set in presentation order. The
// returned slice is a copy.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// Document binds every semantic role to a color. A mapper-produced
// Document is total over the role set.
type Document map[Role]colorspace.Color

// Complete reports whether d binds exactly the fixed role set.
func (d Document) Complete() bool {
	if len(d) != len(allRoles) {
		return false
	}
	for _, r := range allRoles {
		if _, ok := d[r]; !ok {
			return false
		}
	}
	return true
}
