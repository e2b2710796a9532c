package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatguystone/nicemirror"
	"github.com/thatguystone/nicemirror/internal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := internal.NewLogger("nicemirror", fprintf(stderr))

	cmd := newCommand(log)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		log.Error(err, "failed")
		return 1
	}

	return 0
}

func newCommand(log internal.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "nicemirror ROOT",
		Short: "Rewrite a mirrored static site in place so it can be served nicely",
		Long: "Rewrites every .html and .css file under ROOT: links to index.html\n" +
			"are pointed at their directory, and links that climb out of ROOT\n" +
			"are redirected into a side-folder for external assets.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := nicemirror.Mirror{
				Root: args[0],
				Logf: fprintf(cmd.OutOrStdout()),
			}

			stats, err := m.Do()
			if err != nil {
				return fmt.Errorf("rewrite of %s stopped: %w", args[0], err)
			}

			log.Log(fmt.Sprintf("rewrote %d files (%d changed) in %v",
				stats.Files, stats.Changed, stats.Duration))
			return nil
		},
	}
}

func fprintf(w io.Writer) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
