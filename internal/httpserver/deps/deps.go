package deps

import (
	"time"

	"github.com/nyankohost/dctw/internal/logger"
	"github.com/nyankohost/dctw/internal/service"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Discovery   *service.DiscoveryService
	Preferences *service.PreferenceService
}
