// Package client provides commands that call the build code gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/build-share-api/internal/errors"
	"github.com/KirkDiggler/build-share-api/internal/handlers/buildcode/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Text codec the server should use instead of its default
	textCodec string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running build code server",
	Long:  `Client commands make real gRPC requests against a build code server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&textCodec, "codec", "", "Text codec for build codes (default: server's)")

	ClientCmd.AddCommand(encodeCmd)
	ClientCmd.AddCommand(decodeCmd)
	ClientCmd.AddCommand(inspectCmd)

	// Share link commands
	ClientCmd.AddCommand(shareCmd)
	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(deleteCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBuildCodeClient creates a build code service client
func createBuildCodeClient() (v1alpha1.BuildCodeServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBuildCodeServiceClient(conn), cleanup, nil
}

// callContext bounds a request by --timeout and attaches the optional
// request metadata
func callContext(pairs ...string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if textCodec != "" {
		pairs = append(pairs, v1alpha1.MetadataTextCodec, textCodec)
	}
	if len(pairs) > 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, pairs...)
	}
	return ctx, cancel
}

// callError turns a gRPC status back into a structured error
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		return fmt.Errorf("failed to %s: %w %v", action, converted, meta)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

func printStruct(w io.Writer, st *structpb.Struct) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st.AsMap())
}
