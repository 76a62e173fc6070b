package config

const (
	defaultApacheConfig = "/etc/apache2/apache2.conf"
	defaultVRDDir       = "/var/www/1c/vrds"
	defaultPubDir       = "/var/www/1c/pubs"
	defaultURLBase      = "/1c"
	defaultPlatformDir  = "/opt/1cv8/x86_64/current"
	defaultWSModule     = "wsap24.so"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ApacheConfig: defaultApacheConfig,
			VRDDir:       defaultVRDDir,
			PubDir:       defaultPubDir,
			URLBase:      defaultURLBase,
			PlatformDir:  defaultPlatformDir,
			WSModule:     defaultWSModule,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
