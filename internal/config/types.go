package config

// Config holds all configuration for the application.
type Config struct {
	DBName  string
	Port    string
	DataURL string
	Turso   TursoConfig
}

// TursoConfig holds the optional remote database settings. When PrimaryURL is
// empty the store runs on a local database instead.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
