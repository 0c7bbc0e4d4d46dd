// Package tempdir provisions temporary directories for disposable clones.
package tempdir

import (
	"fmt"
	"os"
)

const (
	temporaryDirectoryPatternConstant         = "relcut-dry-run-*"
	temporaryDirectoryFailureTemplateConstant = "failed to create temporary directory: %w"
)

// Provisioner allocates fresh temporary directories.
//
// Directories returned by the OS-backed implementation live under the
// system temporary root; relcut does not remove them itself and leaves
// cleanup to the operating system's temporary-file policy.
type Provisioner interface {
	Provision() (string, error)
}

// OSProvisioner allocates temporary directories through the operating system.
type OSProvisioner struct{}

// NewOSProvisioner constructs an OS-backed provisioner.
func NewOSProvisioner() *OSProvisioner {
	return &OSProvisioner{}
}

// Provision creates a new uniquely named temporary directory.
func (provisioner *OSProvisioner) Provision() (string, error) {
	temporaryDirectory, creationError := os.MkdirTemp("", temporaryDirectoryPatternConstant)
	if creationError != nil {
		return "", fmt.Errorf(temporaryDirectoryFailureTemplateConstant, creationError)
	}
	return temporaryDirectory, nil
}
