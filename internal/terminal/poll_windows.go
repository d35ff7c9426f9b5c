//go:build windows

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// waitReadable blocks until the console handle is signaled or timeout
// elapses.
func waitReadable(f *os.File, timeout time.Duration) (bool, error) {
	ev, err := windows.WaitForSingleObject(windows.Handle(f.Fd()), uint32(timeout/time.Millisecond))
	if err != nil {
		return false, err
	}
	return ev == windows.WAIT_OBJECT_0, nil
}
