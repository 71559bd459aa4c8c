// Package gpiodevice finds the gpiochip device to use on hosts where the
// chip number, and sometimes the chip label, differs between board revisions.
//
// A chip can be selected by label (optionally requiring a set of free pins),
// by the names of the lines it must have, or by the labels the platform
// probes expect. When nothing matches, every observation made during the
// scan is available as a *diagnostics.Digest:
//
//	r := gpiodevice.New(gpiodevice.Config{FriendlyErrors: true})
//	chip, err := r.FindChipByPins([]string{"GPIO17,GPIO27"}, false)
//
// With FriendlyErrors or Fatal set, a failed search prints the digest and
// exits the process, unless debug mode is on. Debug mode follows the
// GPIODEVICE_DEBUG environment variable unless Config.Debug is set.
//
// Claim checks race with other processes requesting the same lines, a free
// line may be taken before the caller requests it.
package gpiodevice
