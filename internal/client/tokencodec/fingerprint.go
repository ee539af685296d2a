package tokencodec

import (
	"os"
	"runtime"
	"time"
)

// Fingerprint is the set of environment attributes the obfuscation key is
// derived from. The fields are passed in explicitly so the transform stays a
// pure function of its inputs and can be exercised without a real host
// environment.
type Fingerprint struct {
	Platform string
	Hostname string
	Locale   string
	Timezone string
}

// EnvironmentFingerprint collects the fingerprint of the current host.
// All attributes are public and low-entropy; see the package documentation
// for the threat model this implies.
func EnvironmentFingerprint() Fingerprint {
	hostname, _ := os.Hostname()
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	zone, _ := time.Now().Zone()

	return Fingerprint{
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Hostname: hostname,
		Locale:   locale,
		Timezone: zone,
	}
}
