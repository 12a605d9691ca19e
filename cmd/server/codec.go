package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/build-share-api/internal/codec/buildcode"
	"github.com/KirkDiggler/build-share-api/internal/codec/textcodec"
	"github.com/KirkDiggler/build-share-api/internal/entities/build"
)

var (
	codecName string
	inputFile string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a JSON or YAML build into a build code",
	Long: `Read a build as JSON or YAML from --file (or stdin) and print its build code.

  buildcode encode --file iop.yaml
  cat iop.json | buildcode encode --codec base32`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [code]",
	Short: "Decode a build code into JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [code]",
	Short: "Print the field layout of a build code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	for _, cmd := range []*cobra.Command{encodeCmd, decodeCmd, inspectCmd} {
		cmd.Flags().StringVar(&codecName, "codec", textcodec.Default.Name(),
			fmt.Sprintf("Text codec (%s)", strings.Join(textcodec.Names(), ", ")))
		cmd.Flags().StringVar(&inputFile, "file", "", "Read input from this file instead of stdin")
	}
}

func localCodec() (*buildcode.Codec, error) {
	text, err := textcodec.Lookup(codecName)
	if err != nil {
		return nil, err
	}
	return buildcode.NewCodec(text), nil
}

// readInput returns the first argument, the --file contents or stdin
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var r io.Reader = cmd.InOrStdin()
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	codec, err := localCodec()
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	b, err := build.ParseDocument([]byte(input))
	if err != nil {
		return err
	}

	code, err := codec.EncodeString(b)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
	return err
}

func runDecode(cmd *cobra.Command, args []string) error {
	codec, err := localCodec()
	if err != nil {
		return err
	}

	code, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	b, err := codec.DecodeString(code)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

func runInspect(cmd *cobra.Command, args []string) error {
	codec, err := localCodec()
	if err != nil {
		return err
	}

	code, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	layout, err := codec.InspectString(code)
	if err != nil {
		return err
	}

	return printLayout(cmd.OutOrStdout(), layout)
}

func printLayout(w io.Writer, layout *buildcode.Layout) error {
	fmt.Fprintf(w, "version %d, %d bytes, %d items\n\n", layout.Version, layout.Size, layout.ItemCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tWIDTH\tFIELD\tRAW\tVALUE")
	for _, f := range layout.Fields {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", f.Offset, f.Width, f.Name, hex.EncodeToString(f.Raw), f.Value)
	}
	return tw.Flush()
}
