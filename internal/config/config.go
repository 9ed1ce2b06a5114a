package config

import (
	"errors"

	"github.com/spf13/viper"
)

const (
	BackendFile   = "file"
	BackendSqlite = "sqlite"
)

type Configuration struct {
	// DataDir is the directory where the snapshot files are kept when the
	// file backend is selected.
	DataDir string
	// Backend selects the snapshot store, either "file" or "sqlite".
	Backend string
	// DbUrl is the path to the database file used by the sqlite backend.
	DbUrl string
	// MigrationsFolder holds the migration files for the sqlite backend.
	MigrationsFolder string
	// Debug, if true, lowers the log level to debug.
	Debug bool
}

// ReadConfig looks for a convivio config file in the working directory and
// under the user's config directory. A missing file is fine; every key has a
// default.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("convivio")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/convivio")

	v.SetDefault("DataDir", "data")
	v.SetDefault("Backend", BackendFile)
	v.SetDefault("DbUrl", "convivio.db")
	v.SetDefault("MigrationsFolder", "migrations")
	v.SetDefault("Debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	var config Configuration
	err := v.Unmarshal(&config)
	return config, err
}
