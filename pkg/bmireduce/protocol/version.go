package protocol

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the coordinator/worker protocol version. The major version
// changes whenever the wire record or the worker environment changes.
const Version = "v1.0.0"

// IsCompatibleVersion checks if a worker version is compatible with the coordinator version.
// Major versions must match exactly; minor and patch versions can differ.
func IsCompatibleVersion(workerVersion, coordinatorVersion string) (bool, error) {
	if !semver.IsValid(workerVersion) {
		return false, fmt.Errorf("invalid worker version: %s", workerVersion)
	}
	if !semver.IsValid(coordinatorVersion) {
		return false, fmt.Errorf("invalid coordinator version: %s", coordinatorVersion)
	}

	return semver.Major(workerVersion) == semver.Major(coordinatorVersion), nil
}

// CheckVersion returns ErrIncompatibleVersion when the worker cannot serve
// the coordinator.
func CheckVersion(workerVersion, coordinatorVersion string) error {
	ok, err := IsCompatibleVersion(workerVersion, coordinatorVersion)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIncompatibleVersion, err)
	}
	if !ok {
		return fmt.Errorf("%w: worker %s cannot serve coordinator %s (required %s.x.x)",
			ErrIncompatibleVersion, workerVersion, coordinatorVersion, semver.Major(coordinatorVersion))
	}
	return nil
}
