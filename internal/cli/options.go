package cli

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath string
	AssetsDir  string
	Headless   bool
	Mute       bool
	Debug      bool
	JSONLogs   bool
	NoStats    bool
}

// ServeOptions contains all the configuration for the serve command.
type ServeOptions struct {
	ConfigPath  string
	AssetsDir   string
	Addr        string
	RedisAddr   string
	RedisPrefix string
	Debug       bool
	JSONLogs    bool
	NoStats     bool
}
