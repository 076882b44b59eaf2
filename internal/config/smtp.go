package config

import "fmt"

// SMTPConfig holds outbound mail configuration.
type SMTPConfig struct {
	// Host is the SMTP server host.
	Host string
	// Port is the SMTP server port.
	Port int
	// User is the SMTP auth user (empty disables auth).
	User string
	// Password is the SMTP auth password.
	Password string
	// From is the sender address for all outbound mail.
	From string
	// Enabled toggles real SMTP delivery; when false sends are logged only.
	Enabled bool
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables.
func LoadSMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:     GetEnv("SMTP_HOST", "localhost"),
		Port:     GetEnvInt("SMTP_PORT", 587),
		User:     GetEnv("SMTP_USER", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
		From:     GetEnv("SMTP_FROM", "no-reply@localhost"),
		Enabled:  GetEnv("SMTP_ENABLED", "false") == "true",
	}
}

// Validate validates SMTP configuration.
func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.From == "" {
		return fmt.Errorf("SMTP from address must not be empty")
	}
	return nil
}
