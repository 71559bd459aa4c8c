package cmd

import (
	"testing"

	"github.com/BertoldVdb/gpiodevice/gpiodevice"
)

func TestLineRequestsUseSplitNames(t *testing.T) {
	names := gpiodevice.ParseNames("GPIO17,GPIO27", " GPIO22 ")
	reqs := lineRequests(names, nil)

	expected := []string{"GPIO17", "GPIO27", "GPIO22"}
	if len(reqs) != len(expected) {
		t.Fatal("Wrong number of requests", len(reqs))
	}
	for i, r := range reqs {
		if r.Line.Name != expected[i] || r.DefaultValue != 0 {
			t.Error("Wrong request", i, r.Line.Name, r.DefaultValue)
		}
	}

	reqs = lineRequests([]string{"a", "b"}, []uint8{1, 0})
	if reqs[0].DefaultValue != 1 || reqs[1].DefaultValue != 0 {
		t.Error("Default values not applied")
	}
}

func TestParseAssignments(t *testing.T) {
	names, values, defaults, err := parseAssignments([]string{"GPIO17=1", " GPIO27 =0"})
	if err != nil {
		t.Fatal(err)
	}
	if names[0] != "GPIO17" || names[1] != "GPIO27" {
		t.Error("Wrong names", names)
	}
	if !values[0] || values[1] || defaults[0] != 1 || defaults[1] != 0 {
		t.Error("Wrong values", values, defaults)
	}

	for _, bad := range []string{"GPIO17", "GPIO17=2", "=1", "GPIO17,GPIO27=1", "GPIO17=1,GPIO27=0"} {
		if _, _, _, err := parseAssignments([]string{bad}); err == nil {
			t.Error("Invalid assignment accepted", bad)
		}
	}
}
