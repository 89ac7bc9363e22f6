package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mgpai22/captions/internal/subtitle"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported subtitle formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printFormats(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func printFormats(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tEXTENSION\tCONTENT TYPE\tSTATUS")

	for _, format := range subtitle.Formats() {
		status, err := formatStatus(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			format,
			subtitle.ExtensionForFormat(format),
			subtitle.ContentType(format),
			status,
		)
	}

	return tw.Flush()
}

// probes the writer with an empty document
func formatStatus(format subtitle.Format) (string, error) {
	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return "", err
	}
	if err := writer.Write(nil, io.Discard); err != nil {
		if errors.Is(err, subtitle.ErrNotImplemented) {
			return "not implemented", nil
		}
		return "", err
	}
	return "ok", nil
}
