package models

// AppBuildInfo describes the running binary. Values are injected at link
// time with -ldflags and default to "N/A".
type AppBuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
