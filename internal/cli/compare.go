package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/diffrec/internal/config"
	"github.com/dshills/diffrec/internal/jsonl"
	"github.com/dshills/diffrec/internal/output"
	"github.com/dshills/diffrec/internal/record"
	"github.com/dshills/diffrec/internal/textio"
)

// Compare flags
var (
	flagLeftName     string
	flagRightName    string
	flagContextLines int
	flagStripWS      bool
	flagFormat       string
	flagOut          string
	flagAppend       bool
	flagJSONLPath    string
)

var compareCmd = &cobra.Command{
	Use:   "compare <left-file> <right-file>",
	Short: "Compare two text files and build a change record",
	Long: `Compare reads two text files (use "-" for stdin on one side), builds a
structured change record with similarity metrics, the unified diff, parsed
hunks, and heuristic risk signals, and writes it in the chosen format.
With --append the record is also appended to the JSONL dataset.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&flagLeftName, "left-name", "", "Display name for the left side (default: file basename)")
	compareCmd.Flags().StringVar(&flagRightName, "right-name", "", "Display name for the right side (default: file basename)")
	compareCmd.Flags().IntVar(&flagContextLines, "context-lines", -1, "Number of context lines in the unified diff")
	compareCmd.Flags().BoolVar(&flagStripWS, "strip-ws", false, "Trim leading/trailing whitespace per line before diffing")
	compareCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, diff)")
	compareCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	compareCmd.Flags().BoolVar(&flagAppend, "append", false, "Append the record to the JSONL dataset")
	compareCmd.Flags().StringVar(&flagJSONLPath, "jsonl", "", "JSONL dataset path")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("only one side may read from stdin")
	}

	cfg, err := config.Load(buildOverrides(cmd))
	if err != nil {
		return err
	}

	leftText, leftName, err := readSide(args[0], record.DefaultLeftName, cfg.MaxInputBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	rightText, rightName, err := readSide(args[1], record.DefaultRightName, cfg.MaxInputBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	// Checked before any computation so an empty side is a usage
	// problem, not a degenerate comparison.
	if leftText == "" || rightText == "" {
		return fmt.Errorf("both sides must contain text before comparing")
	}

	opts := record.Options{
		LeftName:     firstNonEmpty(flagLeftName, leftName),
		RightName:    firstNonEmpty(flagRightName, rightName),
		ContextLines: cfg.ContextLines,
		StripWS:      cfg.StripWhitespace,
	}

	rec, err := record.Build(leftText, rightText, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if err := output.WriteRecord(rec, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if flagAppend {
		if err := jsonl.AppendFile(cfg.JSONLPath, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stderr, "Appended record %s to %s\n", rec.ID, cfg.JSONLPath)
	}

	return nil
}

// readSide reads one comparison side from a file path or stdin ("-")
// and decodes the bytes through the encoding fallback chain.
func readSide(arg, stdinName string, maxBytes int) (text, name string, err error) {
	if arg == "-" {
		var r io.Reader = os.Stdin
		if maxBytes > 0 {
			r = io.LimitReader(os.Stdin, int64(maxBytes)+1)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		if maxBytes > 0 && len(data) > maxBytes {
			return "", "", fmt.Errorf("stdin exceeds input limit of %d bytes", maxBytes)
		}
		return textio.DecodeText(data), stdinName, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", arg, err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", "", fmt.Errorf("%s exceeds input limit of %d bytes", arg, maxBytes)
	}
	return textio.DecodeText(data), filepath.Base(arg), nil
}

func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagContextLines >= 0 {
		m["contextLines"] = strconv.Itoa(flagContextLines)
	}
	if cmd.Flags().Changed("strip-ws") {
		m["stripWhitespace"] = strconv.FormatBool(flagStripWS)
	}
	if flagJSONLPath != "" {
		m["jsonlPath"] = flagJSONLPath
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
