package ports

import (
	"context"
	"io"

	"github.com/norman-ai/norman-cli/internal/domain"
)

// ChannelHandle addresses one allocated byte channel on the remote side.
type ChannelHandle struct {
	PairingID string
	Address   string
	SizeBytes int64
}

type TransferChannel interface {
	Allocate(ctx context.Context, token domain.Secret, target domain.TransferTarget, sizeBytes int64) (ChannelHandle, error)
	WriteAndDigest(ctx context.Context, handle ChannelHandle, source io.Reader) (string, error)
	Finalize(ctx context.Context, token domain.Secret, handle ChannelHandle, checksum string) error
	SubmitRemoteLink(ctx context.Context, token domain.Secret, target domain.TransferTarget, url string) error
}

type OutputFetcher interface {
	StreamOutput(ctx context.Context, token domain.Secret, accountID domain.AccountID, modelID, invocationID, outputID string) (io.ReadCloser, error)
}
