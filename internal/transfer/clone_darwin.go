//go:build darwin

package transfer

import "golang.org/x/sys/unix"

// cloneFile creates dst as a copy-on-write clone of src. APFS supports
// clonefile; other filesystems return ENOTSUP, which classify treats as
// recoverable. The destination must not exist.
func cloneFile(src, dst string) error {
	return unix.Clonefile(src, dst, 0)
}
