package config

// App carries application-level settings for the state core's persistence
// collaborator.
type App struct {
	// SnapshotKey is the fixed key the domain snapshot is stored under.
	SnapshotKey string `env:"APP_SNAPSHOT_KEY" envDefault:"pharma-sarah-state"`
	// Seed controls whether the built-in dataset is loaded when no snapshot
	// exists yet.
	Seed bool `env:"APP_SEED" envDefault:"true"`
}
