package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatPairsText formats CLIPair results as aligned columns.
func formatPairsText(w io.Writer, pairs []CLIPair) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SRC\tDST\tKIND\tINFERRED")
	for _, p := range pairs {
		inferred := ""
		if p.Inferred {
			inferred = "yes"
		}
		fmt.Fprintf(tw, "%d-%d\t%d-%d\t%s\t%s\n",
			p.Src.Start, p.Src.End, p.Dst.Start, p.Dst.End, p.Src.Kind, inferred)
	}
	tw.Flush()
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		switch v := result.Results.(type) {
		case []CLIPair:
			formatPairsText(os.Stdout, v)
		case nil:
			// No output for empty results.
		default:
			return fmt.Errorf("unsupported result type for text format: %T", v)
		}
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so
// RunE can propagate it to Cobra. In JSON mode the error is written to
// stdout as a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
