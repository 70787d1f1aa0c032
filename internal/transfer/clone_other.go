//go:build !linux && !darwin

package transfer

// cloneFile always reports errCloneUnsupported on platforms without a
// copy-on-write primitive, sending every copy down the buffered path.
func cloneFile(src, dst string) error {
	return errCloneUnsupported
}
