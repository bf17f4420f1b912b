package system

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// xdg-desktop-portal Settings interface.
const (
	portalBusName    = "org.freedesktop.portal.Desktop"
	portalPath       = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalReadOne    = "org.freedesktop.portal.Settings.ReadOne"
	portalRead       = "org.freedesktop.portal.Settings.Read"
	appearanceNS     = "org.freedesktop.appearance"
	colorSchemeKey   = "color-scheme"
	colorSchemeDark  = 1
	colorSchemeLight = 2
)

// PortalDetector reads org.freedesktop.appearance color-scheme from the
// desktop portal over the session bus.
type PortalDetector struct {
	logger *slog.Logger
	dial   func(ctx context.Context) (*dbus.Conn, error)
}

// NewPortalDetector creates a portal detector using the session bus.
func NewPortalDetector(logger *slog.Logger) *PortalDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortalDetector{
		logger: logger,
		dial: func(ctx context.Context) (*dbus.Conn, error) {
			return dbus.ConnectSessionBus(dbus.WithContext(ctx))
		},
	}
}

// Name implements Detector.
func (p *PortalDetector) Name() string {
	return "portal"
}

// Detect implements Detector.
func (p *PortalDetector) Detect(ctx context.Context) (bool, bool) {
	conn, err := p.dial(ctx)
	if err != nil {
		p.logger.Debug("failed to connect to session bus", "error", err)
		return false, false
	}
	defer conn.Close()

	obj := conn.Object(portalBusName, portalPath)

	var value dbus.Variant
	err = obj.CallWithContext(ctx, portalReadOne, 0, appearanceNS, colorSchemeKey).Store(&value)
	if err != nil {
		// ReadOne is portal v2; older portals only have the deprecated Read,
		// which wraps the value in an extra variant.
		p.logger.Debug("portal ReadOne failed, falling back to Read", "error", err)
		if err := obj.CallWithContext(ctx, portalRead, 0, appearanceNS, colorSchemeKey).Store(&value); err != nil {
			p.logger.Debug("portal Read failed", "error", err)
			return false, false
		}
	}

	return colorSchemeFromValue(value.Value())
}

// colorSchemeFromValue interprets a color-scheme setting, unwrapping nested
// variants. 1 prefers dark, 2 prefers light, anything else has no preference.
func colorSchemeFromValue(v any) (bool, bool) {
	for {
		inner, ok := v.(dbus.Variant)
		if !ok {
			break
		}
		v = inner.Value()
	}

	var scheme uint32
	switch n := v.(type) {
	case uint32:
		scheme = n
	case int32:
		scheme = uint32(n)
	case uint8:
		scheme = uint32(n)
	default:
		return false, false
	}

	switch scheme {
	case colorSchemeDark:
		return true, true
	case colorSchemeLight:
		return false, true
	default:
		return false, false
	}
}
