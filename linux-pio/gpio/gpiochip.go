package gpio

import (
	"bytes"
	"fmt"
	"os"
	"unsafe"

	"github.com/sigurn/crc8"
	"golang.org/x/sys/unix"
)

var layoutTable = crc8.MakeTable(crc8.CRC8_MAXIM)

func (g *Chip) readChipInfo() error {
	type chipInfoRaw struct {
		Name  [32]byte
		Label [32]byte
		Lines uint32
	}
	var ci chipInfoRaw

	err := ioctlPtr(g.file, gpioGetChipinfoIoctl, unsafe.Pointer(&ci))
	if err != nil {
		return err
	}

	g.chipInfo.Name = bytesToString(ci.Name[:])
	g.chipInfo.Label = bytesToString(ci.Label[:])
	g.chipInfo.Lines = ci.Lines

	return nil
}

func (g *Chip) readLineNames() error {
	names := make(map[string](uint32))
	var layout bytes.Buffer

	for i := uint32(0); i < g.chipInfo.Lines; i++ {
		line, err := g.GetLineInfo(i)
		if err != nil {
			return err
		}

		layout.WriteString(line.Name)
		layout.WriteByte(0)

		if len(line.Name) == 0 {
			continue
		}

		/* Duplicate names resolve to the lowest offset */
		if _, found := names[line.Name]; !found {
			names[line.Name] = i
		}
	}

	g.lineNames = names
	g.layout = crc8.Checksum(layout.Bytes(), layoutTable)

	return nil
}

// OpenChipPath opens the GPIO character device at path and reads its chip
// and line information. Errors from opening the file are returned unwrapped
// so callers can test them with os.IsPermission and friends.
func OpenChipPath(path string) (*Chip, error) {
	g := &Chip{path: path}

	var err error
	g.file, err = os.OpenFile(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, err
	}

	err = g.readChipInfo()
	if err != nil {
		goto failed
	}

	err = g.readLineNames()
	if err != nil {
		goto failed
	}

	return g, nil

failed:
	g.file.Close()
	return nil, err
}

func OpenChip(chip int) (*Chip, error) {
	return OpenChipPath(fmt.Sprintf("/dev/gpiochip%d", chip))
}

func (g *Chip) Close() error {
	return g.file.Close()
}

func (g *Chip) Path() string {
	return g.path
}

func (g *Chip) GetChipInfo() ChipInfo {
	return g.chipInfo
}

// Layout returns a CRC-8 over the names of all lines, in offset order. Boards
// that share a chip label but differ in wiring usually differ here.
func (g *Chip) Layout() uint8 {
	return g.layout
}

func (g *Chip) GetLineInfo(line uint32) (LineInfo, error) {
	result := LineInfo{
		LineOffset: line,
	}

	if result.LineOffset >= g.chipInfo.Lines {
		return result, ErrorLineOutOfRange
	}

	type lineInfoRaw struct {
		LineOffset uint32
		Flags      uint32
		Name       [32]byte
		Consumer   [32]byte
	}

	li := lineInfoRaw{
		LineOffset: result.LineOffset,
	}

	err := ioctlPtr(g.file, gpioGetLineinfoIoctl, unsafe.Pointer(&li))
	if err != nil {
		return result, err
	}

	result.Flags = LineFlag(li.Flags)
	result.Name = bytesToString(li.Name[:])
	result.Consumer = bytesToString(li.Consumer[:])

	return result, nil
}

// FindLineByName returns the offset of the line with the given name.
func (g *Chip) FindLineByName(name string) (uint32, error) {
	if index, found := g.lineNames[name]; found {
		return index, nil
	}
	return 0, ErrorLineNotFound
}

func (g *Chip) OpenLine(label string, flags RequestFlag, line LineRequest) (*Lines, error) {
	return g.OpenLines(label, flags, []LineRequest{line})
}

func (g *Chip) OpenLines(label string, flags RequestFlag, lines []LineRequest) (*Lines, error) {
	if len(lines) > maxHandleLines || len(lines) == 0 {
		return nil, ErrorInvalidLineSize
	}

	type handleRequestRaw struct {
		LineOffsets   [maxHandleLines]uint32
		Flags         uint32
		DefaultValues [maxHandleLines]uint8
		ConsumerLabel [32]byte
		Lines         uint32
		Fd            int32
	}

	req := handleRequestRaw{
		Flags: uint32(flags),
		Lines: uint32(len(lines)),
	}
	stringToBytes(label, req.ConsumerLabel[:])

	for i, l := range lines {
		if len(l.Line.Name) != 0 {
			off, err := g.FindLineByName(l.Line.Name)
			if err != nil {
				return nil, err
			}

			req.LineOffsets[i] = off
		} else {
			req.LineOffsets[i] = l.Line.Offset
		}

		if req.LineOffsets[i] >= g.chipInfo.Lines {
			return nil, ErrorLineOutOfRange
		}

		req.DefaultValues[i] = l.DefaultValue
	}

	err := ioctlPtr(g.file, gpioGetLinehandleIoctl, unsafe.Pointer(&req))
	if err != nil {
		return nil, err
	}

	if req.Fd <= 0 {
		return nil, ErrorInvalidFd
	}

	gl := &Lines{
		file:     os.NewFile(uintptr(req.Fd), label),
		numLines: req.Lines,
	}

	return gl, nil
}
