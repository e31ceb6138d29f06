package convert

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/moodgen"
)

func mustOpen(t *testing.T, p string) *os.File {
	t.Helper()
	f, err := os.Open(p)
	if err != nil {
		t.Fatalf("Open(%s) = %v", p, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestIntermediate(t *testing.T) {
	tests := []struct{ dst, want string }{
		{"a/b/01.jpg", "a/b/01.ppm"},
		{"01.png", "01.ppm"},
		{"noext", "noext.ppm"},
	}
	for _, tt := range tests {
		if got := Intermediate(tt.dst); got != tt.want {
			t.Errorf("Intermediate(%q) = %q, want %q", tt.dst, got, tt.want)
		}
	}
}

func TestCommand_SipsArgs(t *testing.T) {
	got := Sips(JPEG).args("in.ppm", "out.jpg")
	want := []string{"-s", "format", "jpeg", "in.ppm", "--out", "out.jpg"}
	if !slices.Equal(got, want) {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestParseCommand(t *testing.T) {
	c, err := ParseCommand("magick {in} -quality 90 {out}", PNG)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "magick" {
		t.Errorf("Name = %q", c.Name)
	}
	got := c.args("x.ppm", "x.png")
	if want := []string{"x.ppm", "-quality", "90", "x.png"}; !slices.Equal(got, want) {
		t.Errorf("args = %q, want %q", got, want)
	}

	bare, _ := ParseCommand("sips", TIFF)
	if got := bare.args("i", "o"); got[2] != "tiff" {
		t.Errorf("bare command args = %q, want sips template", got)
	}

	if _, err := ParseCommand("   ", JPEG); err == nil {
		t.Error("ParseCommand(blank) succeeded")
	}
}

func TestCommand_Convert(t *testing.T) {
	requireTool(t, "cp")

	dir := t.TempDir()
	dst := filepath.ToSlash(filepath.Join(dir, "style", "section", "01.jpg"))
	ppm := moodgen.EncodePPM(testBuffer())

	c, _ := ParseCommand("cp {in} {out}", JPEG)
	if err := c.Convert(context.Background(), ppm, dst); err != nil {
		t.Fatalf("Convert() = %v", err)
	}

	got, err := os.ReadFile(filepath.FromSlash(dst))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !bytes.Equal(got, ppm) {
		t.Error("output does not hold the converted data")
	}
	if _, err := os.Stat(Intermediate(filepath.FromSlash(dst))); !os.IsNotExist(err) {
		t.Error("intermediate file left behind after success")
	}
}

func TestCommand_ConvertFailure(t *testing.T) {
	requireTool(t, "false")

	dir := t.TempDir()
	dst := filepath.Join(dir, "01.jpg")
	c := &Command{Name: "false", Args: []string{}}

	if err := c.Convert(context.Background(), []byte("P6\n1 1\n255\n\x00\x00\x00"), dst); err == nil {
		t.Fatal("Convert() with failing tool = nil")
	}
	if _, err := os.Stat(Intermediate(dst)); !os.IsNotExist(err) {
		t.Error("intermediate file left behind after failure")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("failed conversion produced output")
	}
}

func TestCommand_MissingTool(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "01.jpg")
	c := &Command{Name: "moodgen-no-such-converter", Format: JPEG}

	if err := c.Convert(context.Background(), []byte("x"), dst); err == nil {
		t.Fatal("Convert() with missing tool = nil")
	}
	if _, err := os.Stat(Intermediate(dst)); !os.IsNotExist(err) {
		t.Error("intermediate file left behind")
	}
}
