package gpiodevice

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/BertoldVdb/gpiodevice/diagnostics"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		in  []string
		out []string
	}{
		{[]string{"GPIO1"}, []string{"GPIO1"}},
		{[]string{"GPIO1", "GPIO2"}, []string{"GPIO1", "GPIO2"}},
		{[]string{"GPIO1, GPIO2 ,GPIO3"}, []string{"GPIO1", "GPIO2", "GPIO3"}},
		{[]string{" GPIO1 ", "GPIO2,GPIO3"}, []string{"GPIO1", "GPIO2", "GPIO3"}},
		{[]string{"", " , "}, nil},
	}

	for _, test := range tests {
		out := ParseNames(test.in...)
		if !reflect.DeepEqual(out, test.out) {
			t.Errorf("ParseNames(%q) = %q", test.in, out)
		}
		if again := ParseNames(out...); !reflect.DeepEqual(again, out) {
			t.Errorf("ParseNames not idempotent for %q", test.in)
		}
	}
}

func TestCheckPinsEmpty(t *testing.T) {
	chip := &fakeChip{label: "foo"}
	c := diagnostics.NewCollector(nil)

	if !CheckPinsAvailable(chip, nil, c) || !CheckPinsAvailable(chip, PinSpec{}, c) {
		t.Error("Empty PinSpec not available")
	}
	if c.Len() != 0 {
		t.Error("Empty PinSpec recorded events")
	}
	if !CheckPinsAvailable(chip, nil, nil) {
		t.Error("Nil collector not accepted")
	}
}

func TestCheckPinsFree(t *testing.T) {
	chip := &fakeChip{label: "foo", lines: []fakeLine{{name: "A"}, {name: "B"}, {name: "C"}}}
	c := diagnostics.NewCollector(nil)

	pins := PinSpec{ByName("led", "B"), ByOffset("button", 2)}
	if !CheckPinsAvailable(chip, pins, c) {
		t.Error("Free pins not available", c.Events())
	}
	if c.Failures() != 0 {
		t.Error("Failures recorded for free pins")
	}
}

func TestCheckPinsClaimed(t *testing.T) {
	chip := &fakeChip{label: "foo", lines: []fakeLine{
		{name: "A", consumer: "first"},
		{name: "B"},
		{name: "C", consumer: "second"},
	}}
	c := diagnostics.NewCollector(nil)

	pins := PinSpec{ByName("c", "C"), ByName("b", "B"), ByOffset("a", 0)}
	if CheckPinsAvailable(chip, pins, c) {
		t.Error("Claimed pins reported available")
	}

	events := c.Events()
	if len(events) != 2 {
		t.Fatal("Expected one event per claimed pin", events)
	}
	for _, e := range events {
		if e.Kind != diagnostics.KindError {
			t.Error("Claim not reported as error", e)
		}
	}
	if events[0].Message != "c: (line 2, C) currently claimed by second" {
		t.Error("Wrong first message", events[0].Message)
	}
	if !strings.Contains(events[1].Message, "claimed by first") {
		t.Error("Wrong second message", events[1].Message)
	}
}

func TestCheckPinsMissingContinues(t *testing.T) {
	chip := &fakeChip{label: "foo", lines: []fakeLine{{name: "A", consumer: "x"}}}
	c := diagnostics.NewCollector(nil)

	pins := PinSpec{ByName("missing", "Z"), ByOffset("range", 7), ByName("busy", "A")}
	if CheckPinsAvailable(chip, pins, c) {
		t.Error("Missing pins reported available")
	}

	events := c.Events()
	if len(events) != 3 {
		t.Fatal("Not all problems reported", events)
	}
	if events[0].Kind != diagnostics.KindNotFound || events[1].Kind != diagnostics.KindNotFound {
		t.Error("Missing lines not reported as not found")
	}
	if events[2].Kind != diagnostics.KindError {
		t.Error("Claimed line not reported after missing ones")
	}
}

func TestCheckPinsIgnoreClaimed(t *testing.T) {
	chip := &fakeChip{label: "foo", lines: []fakeLine{{name: "A", consumer: "x"}}}
	c := diagnostics.NewCollector(nil)

	if !checkPins(chip, PinSpec{ByName("a", "A")}, true, c) {
		t.Error("Claim not ignored")
	}
}

func TestDuplicatePins(t *testing.T) {
	env := newTestEnv()
	env.backend.add("/dev/gpiochip0", &fakeChip{label: "foo"})

	_, err := env.resolver(false, false).FindChipByLabel([]string{"foo"}, PinSpec{ByOffset("a", 0), ByOffset("a", 1)})
	if !errors.Is(err, ErrorDuplicatePin) {
		t.Error("Duplicate label accepted", err)
	}
}
