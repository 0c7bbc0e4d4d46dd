package version

import (
	"errors"
	"fmt"
	"strings"
)

const (
	operationMajorNameConstant       = "major"
	operationMinorNameConstant       = "minor"
	operationPatchNameConstant       = "patch"
	operationRequiredMessageConstant = "operation must be provided"
	unknownOperationTemplateConstant = "unknown operation %q (expected major, minor, or patch)"
)

// Operation identifies the kind of version transition to perform.
type Operation string

// Supported release operations.
const (
	OperationMajor Operation = Operation(operationMajorNameConstant)
	OperationMinor Operation = Operation(operationMinorNameConstant)
	OperationPatch Operation = Operation(operationPatchNameConstant)
)

// ErrOperationRequired indicates an empty operation name was supplied.
var ErrOperationRequired = errors.New(operationRequiredMessageConstant)

// ParseOperation converts a textual operation name into an Operation.
func ParseOperation(operationName string) (Operation, error) {
	trimmedOperationName := strings.ToLower(strings.TrimSpace(operationName))
	if len(trimmedOperationName) == 0 {
		return "", ErrOperationRequired
	}

	switch Operation(trimmedOperationName) {
	case OperationMajor, OperationMinor, OperationPatch:
		return Operation(trimmedOperationName), nil
	default:
		return "", fmt.Errorf(unknownOperationTemplateConstant, operationName)
	}
}
