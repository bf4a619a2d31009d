package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/owenc21/ootp-roster-editor/internal/paths"
	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "ROSTER"

	cfgKeyInput            = "input"
	cfgKeyOutput           = "output"
	cfgKeyDataDir          = "data_dir"
	cfgKeyMajorLeague      = "major_league"
	cfgKeyStrictAffiliates = "strict_affiliates"
	cfgKeyKeepHeader       = "keep_header"
	cfgKeyLogLevel         = "log_level"
)

// setup resolves the config directory, loads config, and builds the logger.
func (a *app) setup() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, a.flags.verbose)
	if err != nil {
		return err
	}
	a.configDir = configDir
	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded", zap.String("config_dir", configDir))
	return nil
}

// loadConfig reads config.yaml from configDir with viper, creating the
// directory and a default file on first run. ROSTER_* environment variables
// (including ones set in ./.env) override file values.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), types.DefaultConfig()); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return types.Config{}, fmt.Errorf("load .env: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyInput, def.Input)
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyDataDir, def.DataDir)
	v.SetDefault(cfgKeyMajorLeague, def.MajorLeague)
	v.SetDefault(cfgKeyStrictAffiliates, def.StrictAffiliates)
	v.SetDefault(cfgKeyKeepHeader, def.KeepHeader)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing writes cfg as YAML to path unless the file exists.
func writeConfigIfMissing(path string, cfg types.Config) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# roster configuration; ROSTER_<KEY> environment variables override.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
