package handlers

import "github.com/nailaham15/nailah-s-portfolio/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	Debug            bool
}

// AnalyticsFromConfig builds Analytics from the loaded configuration.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GA4MeasurementID,
		Debug:            cfg.Debug,
	}
}

// Enabled reports whether any analytics snippet should be rendered.
func (a Analytics) Enabled() bool { return a.GA4MeasurementID != "" }
