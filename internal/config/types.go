package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Backend       BackendConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

// BackendConfig points at the upstream match service.
type BackendConfig struct {
	BaseURL string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
