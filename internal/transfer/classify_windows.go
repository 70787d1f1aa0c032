//go:build windows

package transfer

import (
	"errors"

	"golang.org/x/sys/windows"
)

func classify(err error) (reason string, recoverable bool) {
	switch {
	case errors.Is(err, errCloneUnsupported):
		return "clone not supported on this platform", true
	case errors.Is(err, windows.ERROR_NOT_SAME_DEVICE):
		return "cross-device", true
	case errors.Is(err, windows.ERROR_NOT_SUPPORTED):
		return "operation not supported by filesystem", true
	}
	return "", false
}
