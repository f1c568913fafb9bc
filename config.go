// config.go
// Ambient CLI configuration: an optional .env file loaded with
// github.com/joho/godotenv, layered under github.com/spf13/viper for
// env/file/default precedence. Never consulted by the solver core —
// config.go exists purely for cmd/sokoban.

package sokoban

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI's resolved defaults: where puzzle files live, how
// often to log progress, and the optional LRU cap on the solver's
// seen-encodings set.
type Config struct {
	PuzzlesDir       string
	ProgressInterval int
	SeenCap          int
}

// LoadConfig resolves Config from, in increasing precedence: built-in
// defaults, an optional sokoban.yaml in the working directory, an
// optional .env file, and the process environment (SOKOBAN_PUZZLES_DIR,
// SOKOBAN_PROGRESS_INTERVAL, SOKOBAN_SEEN_CAP). Command-line flags, which
// take the highest precedence of all, are applied by the caller on top of
// the returned Config.
func LoadConfig() *Config {
	// godotenv.Load is a no-op (returns an error we ignore) when no .env
	// file is present.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SOKOBAN")
	v.AutomaticEnv()
	v.SetConfigName("sokoban")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // absent config file is not an error

	v.SetDefault("puzzles_dir", defaultPuzzlesDir())
	v.SetDefault("progress_interval", 10000)
	v.SetDefault("seen_cap", 0)

	return &Config{
		PuzzlesDir:       v.GetString("puzzles_dir"),
		ProgressInterval: v.GetInt("progress_interval"),
		SeenCap:          v.GetInt("seen_cap"),
	}
}

func defaultPuzzlesDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd + "/puzzles"
	}
	return "puzzles"
}
