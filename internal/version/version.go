// Package version holds build version information.
package version

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/chalklabs/tutorgate/internal/version.Version=x.y.z".
var Version = "0.3.0-dev"

// Name is the application name used in banners and status responses.
const Name = "tutorgate"
