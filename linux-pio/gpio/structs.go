package gpio

import "os"

type Chip struct {
	file      *os.File
	path      string
	chipInfo  ChipInfo
	lineNames map[string](uint32)
	layout    uint8
}

type ChipInfo struct {
	Name  string
	Label string
	Lines uint32
}

type Lines struct {
	file     *os.File
	numLines uint32
}

type LineInfo struct {
	LineOffset uint32
	Flags      LineFlag
	Name       string
	Consumer   string
}

// Used reports whether the line is currently claimed by a consumer.
func (l LineInfo) Used() bool {
	return l.Flags&LineKernel > 0
}

// Line identifies a line by name or, if Name is empty, by offset.
type Line struct {
	Offset uint32
	Name   string
}

type LineRequest struct {
	Line         Line
	DefaultValue uint8
}
