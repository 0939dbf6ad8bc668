package dmg

import (
	"fmt"
	"io"
	"os"

	"github.com/k1LoW/errors"
	"github.com/stonkrisk/backdrop"
)

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets the PNG path. Its parent directory is not created.
func WithOutput(path string) Option {
	return func(g *Generator) {
		g.output = path
	}
}

// WithLayout replaces the layout.
func WithLayout(l Layout) Option {
	return func(g *Generator) {
		g.layout = l
	}
}

// WithFontCandidates replaces the font files tried for the text.
func WithFontCandidates(paths ...string) Option {
	return func(g *Generator) {
		g.layout.Fonts = paths
	}
}

// WithCapabilityCheck replaces the startup probe.
func WithCapabilityCheck(check func() error) Option {
	return func(g *Generator) {
		g.check = check
	}
}

// WithStdout sets where the completion message is printed.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// Generator renders the background and writes it as PNG.
type Generator struct {
	layout Layout
	output string
	check  func() error
	stdout io.Writer
}

// NewGenerator returns a generator for DefaultLayout writing to DefaultOutput.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		layout: DefaultLayout(),
		output: DefaultOutput,
		check:  CheckCapability,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Output returns the path the generator writes to.
func (g *Generator) Output() string {
	return g.output
}

// Run probes the imaging capability, renders the layout and writes the
// PNG. On success it prints "Background image created: <path>".
// A failed probe returns an error wrapping ErrMissingCapability before
// anything is drawn or written.
func (g *Generator) Run() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	logger := backdrop.Logger()

	if g.check != nil {
		if err := g.check(); err != nil {
			return err
		}
	}

	dc, fonts, err := Render(g.layout)
	if err != nil {
		return err
	}
	defer dc.Close()

	for _, rejected := range fonts.Rejected {
		logger.Debug("font candidate rejected", "error", rejected)
	}
	if fonts.Fallback {
		logger.Debug("using built-in font face", "font", fonts.Name)
	} else {
		logger.Debug("using font", "path", fonts.Path, "font", fonts.Name)
	}

	if err := dc.SavePNG(g.output); err != nil {
		return fmt.Errorf("dmg: write %s: %w", g.output, err)
	}
	logger.Info("background written", "path", g.output, "width", dc.Width(), "height", dc.Height())

	if _, err := fmt.Fprintf(g.stdout, "Background image created: %s\n", g.output); err != nil {
		return err
	}
	return nil
}
