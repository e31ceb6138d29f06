package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gogpu/moodgen"
)

// Placeholders substituted in Command.Args.
const (
	InputArg  = "{in}"
	OutputArg = "{out}"
	FormatArg = "{format}"
)

// SipsArgs is the argument template for macOS sips.
var SipsArgs = []string{"-s", "format", FormatArg, InputArg, "--out", OutputArg}

// Command converts by running an external program on the local file
// system. The PPM is written to an intermediate file next to the
// destination ("01.ppm" for "01.jpg"), which is removed whether or not the
// program succeeds.
type Command struct {
	Name   string   // program, e.g. "sips"
	Args   []string // argument template; nil means SipsArgs
	Format Format
}

// Sips returns a Command running sips for format f.
func Sips(f Format) *Command {
	return &Command{Name: "sips", Format: f}
}

// ParseCommand splits a command line such as "convert {in} {out}" into a
// Command. A bare program name uses SipsArgs.
func ParseCommand(line string, f Format) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("convert: empty converter command")
	}
	c := &Command{Name: fields[0], Format: f}
	if len(fields) > 1 {
		c.Args = fields[1:]
	}
	return c, nil
}

// Intermediate returns the path of the intermediate PPM for dst.
func Intermediate(dst string) string {
	return strings.TrimSuffix(dst, filepath.Ext(dst)) + ".ppm"
}

func (c *Command) args(in, out string) []string {
	tmpl := c.Args
	if tmpl == nil {
		tmpl = SipsArgs
	}
	r := strings.NewReplacer(InputArg, in, OutputArg, out, FormatArg, c.Format.String())
	args := make([]string, len(tmpl))
	for i, a := range tmpl {
		args[i] = r.Replace(a)
	}
	return args
}

// Convert writes the intermediate file, runs the program and removes the
// intermediate file.
func (c *Command) Convert(ctx context.Context, ppm []byte, dst string) (err error) {
	out := filepath.FromSlash(dst)
	in := Intermediate(out)

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("convert: create directory: %w", err)
	}
	if err := os.WriteFile(in, ppm, 0o644); err != nil {
		return fmt.Errorf("convert: write intermediate: %w", err)
	}
	defer func() {
		if rerr := os.Remove(in); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("convert: remove intermediate: %w", rerr))
		}
	}()

	args := c.args(in, out)
	moodgen.Logger().Debug("convert: exec", "cmd", c.Name, "args", args)

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(output.String())
		if msg == "" {
			return fmt.Errorf("convert: %s %s: %w", c.Name, dst, err)
		}
		return fmt.Errorf("convert: %s %s: %w: %s", c.Name, dst, err, msg)
	}
	return nil
}
