//go:build darwin

package fileinfo

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

func statExtra(info os.FileInfo) (created, accessed *time.Time, owner string) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, nil, ""
	}
	c := time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	a := time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	return &c, &a, ownerName(st.Uid)
}

func ownerName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}
