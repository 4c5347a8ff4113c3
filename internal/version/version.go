// Package version exposes build metadata for the undock-compose binary.
//
// The values are injected at build time through the variables in
// cmd/undock-compose:
//
//	go build -ldflags "-X main.Version=$(git describe --tags) \
//	  -X main.GitCommit=$(git rev-parse --short HEAD) \
//	  -X 'main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)'" \
//	  ./cmd/undock-compose
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("undock-compose %s (%s) built at %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.Platform,
	)
}
