//go:build integration

package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/build-share-api/internal/handlers/buildcode/v1alpha1"
	"github.com/KirkDiggler/build-share-api/internal/testutils"
	"github.com/KirkDiggler/build-share-api/internal/testutils/builders"
)

func TestShareLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := v1alpha1.NewBuildCodeServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := v1alpha1.ToStruct(builders.ExampleBuild())
	require.NoError(t, err)

	encoded, err := client.Encode(ctx, req)
	require.NoError(t, err)
	// Servers started with the default text codec
	assert.Equal(t, testutils.TestExampleCode, encoded.GetValue())

	shareResp, err := client.Share(ctx, encoded)
	require.NoError(t, err)

	var shared v1alpha1.SharedBuild
	require.NoError(t, v1alpha1.FromStruct(shareResp, &shared))
	require.NotEmpty(t, shared.ID)

	resolveResp, err := client.Resolve(ctx, wrapperspb.String(shared.ID))
	require.NoError(t, err)

	var resolved v1alpha1.SharedBuild
	require.NoError(t, v1alpha1.FromStruct(resolveResp, &resolved))
	assert.Equal(t, builders.ExampleBuild(), resolved.Build)

	_, err = client.Delete(ctx, wrapperspb.String(shared.ID))
	require.NoError(t, err)

	_, err = client.Resolve(ctx, wrapperspb.String(shared.ID))
	assert.Equal(t, codes.NotFound, status.Code(err))
}
