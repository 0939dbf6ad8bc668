// Command dmg-background renders the background image of the disk image
// installer window and writes it as PNG.
//
// Usage:
//
//	dmg-background [-o path] [-v]
//
// With no flags the image is written to build/resources/dmg-background.png.
// The directory must exist.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	stackerrors "github.com/k1LoW/errors"
	"github.com/spf13/cobra"
	"github.com/stonkrisk/backdrop"
	"github.com/stonkrisk/backdrop/dmg"
)

// capabilityCheck is replaced in tests.
var capabilityCheck = dmg.CheckCapability

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dmg-background",
		Short: "Render the installer window background",
		Long: `dmg-background renders the background image shown in the disk image
installer window: title, install instructions and a drag arrow.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       backdrop.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				backdrop.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
				defer backdrop.SetLogger(nil)
			}

			g := dmg.NewGenerator(
				dmg.WithOutput(output),
				dmg.WithCapabilityCheck(capabilityCheck),
				dmg.WithStdout(cmd.OutOrStdout()),
			)
			return g.Run()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&output, "output", "o", dmg.DefaultOutput, "path of the PNG to write; the directory must exist")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log font selection to stderr and print stack traces on failure")

	return cmd
}

// execute runs the command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if errors.Is(err, dmg.ErrMissingCapability) {
		_, _ = color.New(color.FgRed).Fprintln(stdout, dmg.InstallHint)
		return 1
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		b, jerr := json.MarshalIndent(stackerrors.StackTraces(err), "", "  ")
		if jerr != nil {
			_, _ = fmt.Fprintf(stderr, "%v\n", jerr)
		} else {
			_, _ = fmt.Fprintf(stderr, "%s\n", b)
		}
	}
	return 1
}
