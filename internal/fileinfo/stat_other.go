//go:build !linux && !darwin

package fileinfo

import (
	"os"
	"time"
)

// statExtra has no portable source for these fields; queries against
// created, accessed or owner see null on this platform.
func statExtra(os.FileInfo) (created, accessed *time.Time, owner string) {
	return nil, nil, ""
}
