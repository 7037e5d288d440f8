package config

import "github.com/spf13/pflag"

// CliConfig holds the command line arguments.
type CliConfig struct {
	ConfigFile string
	EnvFile    string
	Debug      bool
}

// Register binds the CLI arguments to fs.
func (c *CliConfig) Register(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "Path to the config file")
	fs.StringVar(&c.EnvFile, "env-file", "", "Path to a .env file holding secrets")
	fs.BoolVarP(&c.Debug, "debug", "d", false, "Enable debug mode")
}
