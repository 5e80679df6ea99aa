package utils

// ApplicationName is the CLI binary name.
const ApplicationName = "quartz"

// LoggerInitializationFailedMessageFormat reports a failed logger setup.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "Error"

// ConfigFileName is the project-local configuration file viper reads.
const ConfigFileName = "quartz.yaml"

// GlobalConfigDirectoryName is the directory under the user config root
// holding the global configuration file.
const GlobalConfigDirectoryName = "quartz"
