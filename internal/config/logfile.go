package config

import "os"

// LogFileEnvVar names the environment variable that enables file logging.
// It only selects a diagnostics sink; prompt output never depends on it.
const LogFileEnvVar = "GITPROMPT_LOG_FILE"

// LogFilePath returns the log file requested through GITPROMPT_LOG_FILE,
// or an empty string when file logging is off.
func LogFilePath() string {
	return os.Getenv(LogFileEnvVar)
}
