package config

const (
	defaultTickInterval  = 1
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultNtfyTimeout   = 10
	maxTickInterval      = 60
	minNotifyTimeoutSecs = 1
	maxNotifyTimeoutSecs = 120
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scheduler: Scheduler{
			TickInterval: defaultTickInterval,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
