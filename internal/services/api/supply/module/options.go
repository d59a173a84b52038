package module

import (
	"time"

	"panelgrid/internal/platform/config"
)

// Options holds configuration settings for the supply module
type Options struct {
	SurveyBaseURL string
	Timeout       time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("SUPPLY_")
	return Options{
		SurveyBaseURL: sf.MustString("SURVEY_URL"),
		Timeout:       sf.MayDuration("TIMEOUT", 15*time.Second),
	}
}
