//go:build linux

package fileinfo

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// statExtra pulls change time, access time and owner out of the raw
// stat data. Linux has no birth time in Stat_t; ctime is the closest
// widely available stand-in and is what ls and find report.
func statExtra(info os.FileInfo) (created, accessed *time.Time, owner string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, nil, ""
	}
	c := time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	a := time.Unix(st.Atim.Sec, st.Atim.Nsec)
	return &c, &a, ownerName(st.Uid)
}

func ownerName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}
