package deps

import (
	"time"

	"github.com/linkshelf/linkshelf/internal/dashboard"
	"github.com/linkshelf/linkshelf/internal/logger"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time     // for testing, defaults to time.Now
	AllowedHosts []string             // Host headers allowed to access the server
	Dashboard    *dashboard.Dashboard // the signed-in user's bookmark state
	SeedFile     string               // Path to the optional yaml seed file
}
