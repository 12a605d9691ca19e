package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/build-share-api/internal/handlers/buildcode/v1alpha1"
)

var shareCmd = &cobra.Command{
	Use:   "share [code]",
	Short: "Store a build code and print its share ID",
	Args:  cobra.ExactArgs(1),
	RunE:  shareBuild,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [share-id]",
	Short: "Look up a share ID",
	Args:  cobra.ExactArgs(1),
	RunE:  resolveShare,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [share-id]",
	Short: "Remove a share link",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteShare,
}

var shareTTL time.Duration

func init() {
	shareCmd.Flags().DurationVar(&shareTTL, "ttl", 0, "How long the link lives (default: server's)")
}

func shareBuild(cmd *cobra.Command, args []string) error {
	var pairs []string
	if shareTTL < 0 {
		return fmt.Errorf("--ttl must be positive, got %s", shareTTL)
	}
	if shareTTL > 0 {
		pairs = append(pairs, v1alpha1.MetadataShareTTL, shareTTL.String())
	}

	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext(pairs...)
	defer cancel()

	resp, err := client.Share(ctx, wrapperspb.String(args[0]))
	if err != nil {
		return callError("share build", err)
	}

	var shared v1alpha1.SharedBuild
	if err := v1alpha1.FromStruct(resp, &shared); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Share ID:   %s\n", shared.ID)
	fmt.Fprintf(out, "Codec:      %s (version %d)\n", shared.Codec, shared.Version)
	fmt.Fprintf(out, "Expires at: %s\n", shared.ExpiresAt.Format(time.RFC3339))
	if shared.Build != nil {
		fmt.Fprintf(out, "Build:      %s level %d, %d items\n",
			shared.Build.Class, shared.Build.Level, len(shared.Build.Items))
	}
	return nil
}

func resolveShare(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Resolve(ctx, wrapperspb.String(args[0]))
	if err != nil {
		return callError("resolve share", err)
	}

	return printStruct(cmd.OutOrStdout(), resp)
}

func deleteShare(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBuildCodeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	if _, err := client.Delete(ctx, wrapperspb.String(args[0])); err != nil {
		return callError("delete share", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
