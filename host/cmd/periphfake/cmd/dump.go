package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"periphfake/trace"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the records of a trace file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return dump(cmd.OutOrStdout(), f)
	},
}

func dump(out io.Writer, r io.Reader) error {
	tr, err := trace.NewReader(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "session %s\n", tr.Session())

	recs, err := tr.ReadAll()
	for i, rec := range recs {
		fmt.Fprintf(out, "%4d %s %4d  %s\n", i, rec.Dir, len(rec.Data), hex.EncodeToString(rec.Data))
	}
	if err != nil {
		return fmt.Errorf("record %d: %w", len(recs), err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
