package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime configuration, read from the environment.
type App struct {
	// Network
	Port string `envconfig:"PORT" default:"8080"`
	// Storage: empty DSN runs the in-memory store
	GigDSN string `envconfig:"GIG_DSN" default:""`
	// Notifications
	NotifyBuffer int `envconfig:"NOTIFY_BUFFER" default:"8"`
	// Demo seed data for the in-memory store
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
