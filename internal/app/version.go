package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/K-svg-lab/palabra-sub002/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in the startup log and by GET /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
