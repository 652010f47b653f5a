package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScheduler(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScheduler() error {
	if c.Scheduler.TickInterval < 1 || c.Scheduler.TickInterval > maxTickInterval {
		return fmt.Errorf("scheduler.tick_interval must be between 1 and %d seconds", maxTickInterval)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	t := c.Notifications.RequestTimeout
	if t < minNotifyTimeoutSecs || t > maxNotifyTimeoutSecs {
		return fmt.Errorf("notifications.request_timeout must be between %d and %d seconds", minNotifyTimeoutSecs, maxNotifyTimeoutSecs)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
