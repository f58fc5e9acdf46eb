package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bft-labs/framezip/internal/container"
)

func newInspectCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect <container>",
		Short: "List the records of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return inspect(cmd.OutOrStdout(), f, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the size of every record")
	return cmd
}

// inspect walks every record of r and prints the totals. A truncated tail is
// reported after the records that could be read.
func inspect(out io.Writer, r io.Reader, verbose bool) error {
	cr := container.NewReader(r)

	var records int
	var payload int64
	for {
		rec, err := cr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "records: %d (payload %d bytes) before error\n", records, payload)
			return fmt.Errorf("record %d: %w", records, err)
		}
		if verbose {
			fmt.Fprintf(out, "%6d  %d bytes\n", records, len(rec))
		}
		records++
		payload += int64(len(rec))
	}

	total := payload + int64(records*container.HeaderSize)
	fmt.Fprintf(out, "records: %d\npayload bytes: %d\ncontainer bytes: %d\n", records, payload, total)
	return nil
}
