package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabasePath string
	SchedulePath string
	LogLevel     string

	FormSlug      string
	FormTitle     string
	FormPublicURL string
	IntakeToken   string

	NotifierBackend string
	NotifyRecipient string
	SlackBotToken   string
	SlackChannelID  string
	TelegramToken   string
	TelegramChatID  int64
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabasePath: getEnv("DATABASE_PATH", "./window.db"),
		SchedulePath: getEnv("SCHEDULE_PATH", "./schedule.yaml"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		FormSlug:      getEnv("FORM_SLUG", "weekly"),
		FormTitle:     getEnv("FORM_TITLE", "Weekly submission form"),
		FormPublicURL: getEnv("FORM_PUBLIC_URL", ""),
		IntakeToken:   getEnv("INTAKE_TOKEN", ""),

		NotifierBackend: getEnv("NOTIFIER_BACKEND", "log"),
		NotifyRecipient: getEnv("NOTIFY_RECIPIENT", ""),
		SlackBotToken:   getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID:  getEnv("SLACK_CHANNEL_ID", ""),
		TelegramToken:   getEnv("TELEGRAM_TOKEN", ""),
		TelegramChatID:  getEnvInt64("TELEGRAM_CHAT_ID", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
