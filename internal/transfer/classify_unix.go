//go:build !windows

package transfer

import (
	"errors"

	"golang.org/x/sys/unix"
)

// classify decides whether a failed rename/clone may fall through to the
// buffered copy. Cross-device and unsupported-primitive conditions are the
// expected recoverable path for cross-volume transfers; everything else
// (permission denied, disk full, ...) is fatal.
func classify(err error) (reason string, recoverable bool) {
	switch {
	case errors.Is(err, errCloneUnsupported):
		return "clone not supported on this platform", true
	case errors.Is(err, unix.EXDEV):
		return "cross-device", true
	case errors.Is(err, unix.ENOTSUP), errors.Is(err, unix.EOPNOTSUPP), errors.Is(err, unix.ENOSYS):
		return "operation not supported by filesystem", true
	}
	return "", false
}
