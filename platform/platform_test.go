package platform

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func tempDir() string {
	dir, err := ioutil.TempDir(os.TempDir(), "test-")
	if err != nil {
		panic(err)
	}
	return dir
}

func writeFile(t *testing.T, path string, content string) {
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestDetect(t *testing.T) {
	dir := tempDir()
	defer os.RemoveAll(dir)

	model := filepath.Join(dir, "model")
	board := filepath.Join(dir, "board_name")
	writeFile(t, model, "Raspberry Pi 5 Model B Rev 1.0\x00")
	writeFile(t, board, "Alienware m15 R7\n")

	probes := []Probe{
		{Name: "missing", File: filepath.Join(dir, "nope"), Prefix: "", Labels: []string{"x"}},
		{Name: "pi", File: model, Prefix: "Raspberry Pi", Labels: []string{"pinctrl-rp1", "pinctrl-bcm2711"}},
		{Name: "aw", File: board, Prefix: "Alienware m15", Labels: []string{"INT3450:00"}},
	}

	labels, err := Detect(probes)
	if err != nil {
		t.Fatal("Detect failed", err)
	}
	if len(labels) != 2 || labels[0] != "pinctrl-rp1" || labels[1] != "pinctrl-bcm2711" {
		t.Error("Wrong labels", labels)
	}

	/* Returned labels are a copy */
	labels[0] = "changed"
	if probes[1].Labels[0] != "pinctrl-rp1" {
		t.Error("Detect exposed probe labels")
	}

	labels, err = Detect(probes[2:])
	if err != nil || len(labels) != 1 || labels[0] != "INT3450:00" {
		t.Error("Second probe not matched", labels, err)
	}
}

func TestDetectUnknown(t *testing.T) {
	dir := tempDir()
	defer os.RemoveAll(dir)

	model := filepath.Join(dir, "model")
	writeFile(t, model, "Some Other Board\n")

	_, err := Detect([]Probe{{Name: "pi", File: model, Prefix: "Raspberry Pi", Labels: []string{"a"}}})
	if err != ErrorUnknownPlatform {
		t.Error("Unknown platform not reported", err)
	}

	_, err = Detect(nil)
	if err != ErrorUnknownPlatform {
		t.Error("Empty probe list not reported", err)
	}
}

func TestOnlyFirstLine(t *testing.T) {
	dir := tempDir()
	defer os.RemoveAll(dir)

	model := filepath.Join(dir, "model")
	writeFile(t, model, "Something\nRaspberry Pi\n")

	p := Probe{Name: "pi", File: model, Prefix: "Raspberry Pi", Labels: []string{"a"}}
	if p.Match() {
		t.Error("Matched on second line")
	}
}

func TestParseProbes(t *testing.T) {
	data := []byte(`
probes:
  - name: my-board
    file: /proc/device-tree/model
    prefix: My Board
    labels: [gpio-a, gpio-b]
`)

	probes, err := ParseProbes(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(probes) != 1 || probes[0].Name != "my-board" || len(probes[0].Labels) != 2 {
		t.Error("Probe not decoded", probes)
	}

	all := WithDefaults(probes)
	if len(all) != 1+len(DefaultProbes) || all[0].Name != "my-board" {
		t.Error("User probes do not come first")
	}
}

func TestParseProbesInvalid(t *testing.T) {
	bad := []string{
		"probes: [{file: /x, prefix: a, labels: [b]}]",
		"probes: [{name: n, prefix: a, labels: [b]}]",
		"probes: [{name: n, file: /x, labels: [b]}]",
		"probes: [{name: n, file: /x, prefix: a}]",
		"probes: {",
	}

	for _, b := range bad {
		if _, err := ParseProbes([]byte(b)); err == nil {
			t.Error("Invalid table accepted", b)
		}
	}
}

func TestLoadProbes(t *testing.T) {
	dir := tempDir()
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "probes.yaml")
	writeFile(t, path, "probes:\n  - {name: n, file: /x, prefix: a, labels: [b]}\n")

	probes, err := LoadProbes(path)
	if err != nil || len(probes) != 1 {
		t.Error("Load failed", err)
	}

	if _, err := LoadProbes(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing file loaded")
	}
}
