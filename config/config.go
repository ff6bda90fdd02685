package config

import (
	"os"
	"path/filepath"
)

// env reads an environment variable with a fallback default.
func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DataPath returns the directory holding the three JSON database files
// (jobs.json, applications.json, referees.json).
func DataPath() string {
	return env("DATA_PATH", "./database")
}

// UploadPath returns the directory CV uploads are stored in.
func UploadPath() string {
	return env("UPLOAD_PATH", "./uploads")
}

// ServerPort returns the HTTP listen port.
func ServerPort() string {
	return env("SERVER_PORT", "8080")
}

// PythonBinary returns the python interpreter used for the CV parser script.
func PythonBinary() string {
	return env("VENV_PY", "python3")
}

// CVScriptPath returns the path of the external CV parser script.
func CVScriptPath() string {
	return env("CV_SCRIPT", filepath.Join("scripts", "cv_parser.py"))
}

// DashboardBaseURL returns the public base URL used in referee dashboard
// links, e.g. "http://localhost:3000". Empty when invitation emails are
// disabled.
func DashboardBaseURL() string {
	return os.Getenv("DASHBOARD_BASE_URL")
}
