package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	GLOBAL_LANGUAGE        = "global.interface_language"
	TELEGRAM_TOKEN         = "telegram.token"
	TELEGRAM_ALLOWED_USERS = "telegram.allowed_users"
	TELEGRAM_ALLOWED_CHATS = "telegram.allowed_chats"
	GEMINI_API_KEY         = "gemini.api_key"
	GEMINI_MODEL           = "gemini.model"
	HTTP_PROXY             = "http.proxy"
	HTTP_NO_PROXY          = "http.no_proxy"
	DATABASE_DSN           = "database.dsn"
	LOGGING_LEVEL          = "logging.level"
	LOGGING_WRITE_IN_FILE  = "logging.write_in_file"
	LOGGING_FILE_PATH      = "logging.file_path"
)

var defaultSQLiteParams = map[string]string{
	"_journal":      "WAL",
	"_busy_timeout": "10000",
	"_synchronous":  "NORMAL",
	"_cache":        "shared",
}

type Config struct {
	k *koanf.Koanf
}

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "Path to config file")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		GLOBAL_LANGUAGE:       "ru",
		TELEGRAM_TOKEN:        "",
		GEMINI_API_KEY:        "",
		GEMINI_MODEL:          "gemini-2.5-flash",
		HTTP_PROXY:            nil,
		DATABASE_DSN:          "bot.db?_journal=WAL&_busy_timeout=5000&_synchronous=NORMAL&_cache=shared",
		LOGGING_LEVEL:         "info",
		LOGGING_WRITE_IN_FILE: false,
	}
	k.Load(confmap.Provider(defaults, "."), nil)

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config %s: %v", path, err)
			}
			break
		}
	}

	k.Load(env.Provider("TGBOT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TGBOT_")),
			"_", ".",
		)
	}), nil)

	if k.Get(TELEGRAM_TOKEN) == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if k.Get(GEMINI_API_KEY) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	return &Config{k: k}, nil
}

// NewFromMap builds a config from in-memory values, bypassing files and
// the environment. Intended for tests.
func NewFromMap(values map[string]any) *Config {
	k := koanf.New(".")
	k.Load(confmap.Provider(values, "."), nil)
	return &Config{k: k}
}

func (c *Config) Telegram() TelegramConfig {
	return TelegramConfig{
		Token:        c.k.String(TELEGRAM_TOKEN),
		AllowedUsers: c.k.Int64s(TELEGRAM_ALLOWED_USERS),
		AllowedChats: c.k.Int64s(TELEGRAM_ALLOWED_CHATS),
	}
}

func (c *Config) Gemini() GeminiConfig {
	return GeminiConfig{
		APIKey: c.k.String(GEMINI_API_KEY),
		Model:  c.k.String(GEMINI_MODEL),
	}
}

func (c *Config) Log() LoggingConfig {
	return LoggingConfig{
		Level:       c.k.String(LOGGING_LEVEL),
		WriteInFile: c.k.Bool(LOGGING_WRITE_IN_FILE),
		FilePath:    c.k.String(LOGGING_FILE_PATH),
	}
}

func (c *Config) HTTP() HTTPConfig {
	var proxy string
	if proxyValue := c.k.Get(HTTP_PROXY); proxyValue != nil {
		proxy = proxyValue.(string)
	}

	return HTTPConfig{
		Proxy:   proxy,
		NoProxy: c.k.Strings(HTTP_NO_PROXY),
	}
}

func (c *Config) Global() GlobalConfig {
	return GlobalConfig{
		InterfaceLanguage: c.k.String(GLOBAL_LANGUAGE),
	}
}

func (c *Config) GetDatabaseDSN() string {
	dsn := c.k.String(DATABASE_DSN)
	parts := strings.Split(dsn, "?")
	path := parts[0]

	params := make(map[string]string)
	if len(parts) > 1 {
		for param := range strings.SplitSeq(parts[1], "&") {
			if kv := strings.Split(param, "="); len(kv) == 2 {
				params[kv[0]] = kv[1]
			}
		}
	}

	for k, v := range defaultSQLiteParams {
		if _, exists := params[k]; !exists {
			params[k] = v
		}
	}

	var queryParams []string
	for k, v := range params {
		queryParams = append(queryParams, k+"="+v)
	}
	sort.Strings(queryParams)

	if len(queryParams) > 0 {
		return path + "?" + strings.Join(queryParams, "&")
	}
	return path
}

func getConfigPaths() []string {
	if configPath != "" {
		return []string{configPath}
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		"tg-bot.toml",
		"config.toml",
		filepath.Join(xdgConfig, "tg-bot", "config.toml"),
		"/etc/tg-bot/config.toml",
	}
}
