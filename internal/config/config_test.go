package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "NOTIFY_CHANNEL_ID",
		"DATABASE_PATH", "PORT", "LOG_FILE", "SLACK_MESSAGES_PER_MINUTE",
	} {
		t.Setenv(key, env[key])
	}
}

func Test_Load(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		setEnv(t, nil)

		cfg := Load()

		assert.Equal(t, "./czbot.db", cfg.DatabasePath)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "", cfg.LogFile)
		assert.Equal(t, 50, cfg.SlackMessagesPerMinute)
	})

	t.Run("Should read values from the environment", func(t *testing.T) {
		setEnv(t, map[string]string{
			"SLACK_BOT_TOKEN":           "xoxb-token",
			"SLACK_SIGNING_SECRET":      "secret",
			"NOTIFY_CHANNEL_ID":         "C123",
			"DATABASE_PATH":             "/data/cz.db",
			"PORT":                      "8080",
			"SLACK_MESSAGES_PER_MINUTE": "20",
		})

		cfg := Load()

		assert.Equal(t, "xoxb-token", cfg.SlackBotToken)
		assert.Equal(t, "secret", cfg.SlackSigningSecret)
		assert.Equal(t, "C123", cfg.NotifyChannelID)
		assert.Equal(t, "/data/cz.db", cfg.DatabasePath)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 20, cfg.SlackMessagesPerMinute)
	})

	t.Run("Should fall back on invalid numbers", func(t *testing.T) {
		setEnv(t, map[string]string{"SLACK_MESSAGES_PER_MINUTE": "lots"})

		assert.Equal(t, 50, Load().SlackMessagesPerMinute)
	})
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		wantMissing []string
	}{
		{
			name: "Should accept a complete config",
			cfg:  Config{SlackBotToken: "t", SlackSigningSecret: "s", NotifyChannelID: "C1"},
		},
		{
			name:        "Should report every missing key",
			cfg:         Config{},
			wantErr:     true,
			wantMissing: []string{"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "NOTIFY_CHANNEL_ID"},
		},
		{
			name:        "Should report the channel",
			cfg:         Config{SlackBotToken: "t", SlackSigningSecret: "s"},
			wantErr:     true,
			wantMissing: []string{"NOTIFY_CHANNEL_ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingConfig))
			for _, key := range tt.wantMissing {
				assert.Contains(t, err.Error(), key)
			}
		})
	}
}

func Test_Config_SetupLogging(t *testing.T) {
	t.Run("Should return a no-op closer without a log file", func(t *testing.T) {
		cfg := Config{}
		closer := cfg.SetupLogging()
		assert.NoError(t, closer.Close())
	})

	t.Run("Should write to the log file", func(t *testing.T) {
		cfg := Config{LogFile: filepath.Join(t.TempDir(), "czbot.log")}
		closer := cfg.SetupLogging()
		defer log.SetOutput(os.Stderr)

		log.Printf("hello")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})
}
