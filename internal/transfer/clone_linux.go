//go:build linux

package transfer

import (
	"os"

	"golang.org/x/sys/unix"
)

// cloneFile creates dst as a copy-on-write clone of src via FICLONE. The
// destination must not exist; callers remove any previous file first. On
// filesystems without reflink support the ioctl fails with ENOTSUP or, for
// cross-device pairs, EXDEV, which classify treats as recoverable.
func cloneFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if err := unix.IoctlFileClone(int(out.Fd()), int(in.Fd())); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
