package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	SaveDirectory    string  `mapstructure:"save_directory"`
	StartMenu        bool    `mapstructure:"start_menu"`
	Confirmations    bool    `mapstructure:"confirmations"`
	Store            string  `mapstructure:"store"`
	RedisAddr        string  `mapstructure:"redis_addr"`
	RedisDB          int     `mapstructure:"redis_db"`
	SQLitePath       string  `mapstructure:"sqlite_path"`
	ConnectThreshold float64 `mapstructure:"connect_threshold"`
	DrawingColor     string  `mapstructure:"drawing_color"`
	StrokeWidth      float64 `mapstructure:"stroke_width"`
	LogFile          string  `mapstructure:"log_file"`
	LogLevel         string  `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		SaveDirectory:    filepath.Join(appDir(), "snapshots"),
		StartMenu:        true,
		Confirmations:    true,
		Store:            "file",
		RedisAddr:        "localhost:6379",
		SQLitePath:       filepath.Join(appDir(), "flowcanvas.db"),
		ConnectThreshold: defaultConnectThreshold,
		DrawingColor:     defaultStrokeColor,
		StrokeWidth:      defaultStrokeWidth,
		LogFile:          filepath.Join(appDir(), "flowcanvas.log"),
		LogLevel:         "info",
	}
}

func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowcanvas"
	}
	return filepath.Join(home, ".flowcanvas")
}

// GlobalConfigPath is ~/.flowcanvas/config.yaml.
func GlobalConfigPath() string {
	return filepath.Join(appDir(), "config.yaml")
}

// ProjectConfigPath is ./.flowcanvas.yaml; it overrides the global file.
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ".flowcanvas.yaml"
	}
	return filepath.Join(cwd, ".flowcanvas.yaml")
}

// loadConfig merges defaults, the global file, the project file (or the
// explicit path when given) and FLOWCANVAS_* environment variables. Missing
// files are skipped.
func loadConfig(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	paths := []string{GlobalConfigPath(), ProjectConfigPath()}
	if explicit != "" {
		paths = []string{explicit}
	}
	for _, path := range paths {
		if err := loadConfigFile(path, cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) && explicit == "" {
				continue
			}
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("FLOWCANVAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"save_directory", "store", "redis_addr", "redis_db", "sqlite_path", "connect_threshold", "log_file", "log_level"} {
		_ = v.BindEnv(key)
	}
	applyEnv(v, cfg)

	cfg.SaveDirectory = expandHome(cfg.SaveDirectory)
	cfg.SQLitePath = expandHome(cfg.SQLitePath)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

func applyEnv(v *viper.Viper, cfg *Config) {
	if v.IsSet("save_directory") {
		cfg.SaveDirectory = v.GetString("save_directory")
	}
	if v.IsSet("store") {
		cfg.Store = v.GetString("store")
	}
	if v.IsSet("redis_addr") {
		cfg.RedisAddr = v.GetString("redis_addr")
	}
	if v.IsSet("redis_db") {
		cfg.RedisDB = v.GetInt("redis_db")
	}
	if v.IsSet("sqlite_path") {
		cfg.SQLitePath = v.GetString("sqlite_path")
	}
	if v.IsSet("connect_threshold") {
		cfg.ConnectThreshold = v.GetFloat64("connect_threshold")
	}
	if v.IsSet("log_file") {
		cfg.LogFile = v.GetString("log_file")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// OpenKV builds the configured storage backend.
func (c *Config) OpenKV() (KV, error) {
	switch strings.ToLower(c.Store) {
	case "", "file":
		return NewFileKV(c.SaveDirectory)
	case "redis":
		return DialRedis(c.RedisAddr, c.RedisDB)
	case "sqlite":
		return NewSQLiteKV(c.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store %q (want file, redis or sqlite)", c.Store)
	}
}
