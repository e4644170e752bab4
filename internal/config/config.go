package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// DatabaseFile is the path to the local SQLite catalog database
	DatabaseFile string
	// GutendexBaseURL is the base address of the remote book catalog API
	GutendexBaseURL string
	// ServerListen is the listen address for the HTTP surface
	ServerListen string
	// MarkdownOutputDir is where exported book notes are written
	MarkdownOutputDir string
)

// SetDefaults registers the default configuration values with viper.
func SetDefaults() {
	viper.SetDefault("database.file", "./libra.db")
	viper.SetDefault("gutendex.baseurl", "https://gutendex.com/books/")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("export.outputdir", "./markdown/")
}

// InitConfig initializes the global configuration from viper.
func InitConfig() {
	SetDefaults()

	DatabaseFile = viper.GetString("database.file")
	GutendexBaseURL = viper.GetString("gutendex.baseurl")
	ServerListen = viper.GetString("server.listen")
	MarkdownOutputDir = viper.GetString("export.outputdir")
}

// SetDatabaseFile overrides the catalog database path.
func SetDatabaseFile(path string) {
	if path != "" {
		DatabaseFile = path
		viper.Set("database.file", path)
	}
}

// SetGutendexBaseURL overrides the remote catalog base address.
func SetGutendexBaseURL(baseURL string) {
	if baseURL != "" {
		GutendexBaseURL = baseURL
		viper.Set("gutendex.baseurl", baseURL)
	}
}

// SetServerListen overrides the HTTP listen address.
func SetServerListen(addr string) {
	if addr != "" {
		ServerListen = addr
		viper.Set("server.listen", addr)
	}
}
