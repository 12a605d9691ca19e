package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/build-share-api/internal/entities/build"
	"github.com/KirkDiggler/build-share-api/internal/handlers/buildcode/v1alpha1"
)

var buildFile string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a JSON or YAML build on the server",
	Long: `Send a JSON or YAML build read from --file (or stdin) and print the build code.

  client encode --file iop.yaml`,
	Args: cobra.NoArgs,
	RunE: encodeBuild,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [code]",
	Short: "Decode a build code on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  decodeBuild,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [code]",
	Short: "Show the field layout of a build code",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectCode,
}

func init() {
	encodeCmd.Flags().StringVar(&buildFile, "file", "", "Build file (default stdin)")
}

func encodeBuild(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if buildFile != "" {
		f, err := os.Open(buildFile)
		if err != nil {
			return fmt.Errorf("failed to open build file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read build: %w", err)
	}

	b, err := build.ParseDocument(data)
	if err != nil {
		return err
	}

	req, err := v1alpha1.ToStruct(b)
	if err != nil {
		return err
	}

	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Encode(ctx, req)
	if err != nil {
		return callError("encode build", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.GetValue())
	return nil
}

func decodeBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Decode(ctx, wrapperspb.String(strings.TrimSpace(args[0])))
	if err != nil {
		return callError("decode build", err)
	}

	return printStruct(cmd.OutOrStdout(), resp)
}

func inspectCode(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Inspect(ctx, wrapperspb.String(strings.TrimSpace(args[0])))
	if err != nil {
		return callError("inspect build code", err)
	}

	return printStruct(cmd.OutOrStdout(), resp)
}
