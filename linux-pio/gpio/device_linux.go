package gpio

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

const sysfsGpioDevices = "/sys/bus/gpio/devices"

// IsChipDevice checks that path refers to a GPIO character device, and not
// to a stale node or some other device that happens to match the name.
func IsChipDevice(path string) bool {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}

	var st unix.Stat_t
	if unix.Stat(realPath, &st) != nil {
		return false
	}

	if st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return false
	}

	/* The sysfs entry of a gpiochip contains the same device number */
	devFile := filepath.Join(sysfsGpioDevices, filepath.Base(realPath), "dev")
	content, err := ioutil.ReadFile(devFile)
	if err != nil {
		return false
	}

	rdev := uint64(st.Rdev)
	expected := fmt.Sprintf("%d:%d", unix.Major(rdev), unix.Minor(rdev))

	return strings.TrimSpace(string(content)) == expected
}
