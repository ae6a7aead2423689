package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	SlackBotToken          string
	SlackSigningSecret     string
	NotifyChannelID        string
	DatabasePath           string
	Port                   string
	LogFile                string
	SlackMessagesPerMinute int
}

func Load() *Config {
	return &Config{
		SlackBotToken:          getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:     getEnv("SLACK_SIGNING_SECRET", ""),
		NotifyChannelID:        getEnv("NOTIFY_CHANNEL_ID", ""),
		DatabasePath:           getEnv("DATABASE_PATH", "./czbot.db"),
		Port:                   getEnv("PORT", "3000"),
		LogFile:                getEnv("LOG_FILE", ""),
		SlackMessagesPerMinute: getEnvInt("SLACK_MESSAGES_PER_MINUTE", 50),
	}
}

// Validate reports every required key that is unset
func (c *Config) Validate() error {
	var missing []string
	if c.SlackBotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.SlackSigningSecret == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}
	if c.NotifyChannelID == "" {
		missing = append(missing, "NOTIFY_CHANNEL_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// SetupLogging tees the standard logger into a rotating file when LogFile is
// set. The returned closer is a no-op otherwise.
func (c *Config) SetupLogging() io.Closer {
	if c.LogFile == "" {
		return io.NopCloser(nil)
	}

	logWriter := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logWriter))

	return logWriter
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
