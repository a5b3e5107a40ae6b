package rest

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

// StreamWriter moves the bytes of one allocated channel.
type StreamWriter interface {
	WriteAndDigest(ctx context.Context, handle ports.ChannelHandle, source io.Reader) (string, error)
}

// TransferChannel allocates and finalizes channels over REST and hands the
// byte stream to a StreamWriter.
type TransferChannel struct {
	client *Client
	writer StreamWriter
}

func NewTransferChannel(client *Client, writer StreamWriter) *TransferChannel {
	return &TransferChannel{client: client, writer: writer}
}

var _ ports.TransferChannel = (*TransferChannel)(nil)

type assetPairingRequest struct {
	AccountID domain.AccountID `json:"account_id"`
	ModelID   string           `json:"model_id"`
	AssetID   string           `json:"asset_id"`
	SizeBytes int64            `json:"file_size_in_bytes"`
}

type inputPairingRequest struct {
	AccountID    domain.AccountID `json:"account_id"`
	ModelID      string           `json:"model_id"`
	InvocationID string           `json:"invocation_id"`
	InputID      string           `json:"input_id"`
	SizeBytes    int64            `json:"file_size_in_bytes"`
}

type socketInfo struct {
	PairingID string `json:"pairing_id"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
}

func (t *TransferChannel) Allocate(ctx context.Context, token domain.Secret, target domain.TransferTarget, sizeBytes int64) (ports.ChannelHandle, error) {
	var (
		route string
		body  any
	)
	switch target.Kind {
	case domain.TargetAsset:
		route = routeAllocateAssetSocket
		body = assetPairingRequest{
			AccountID: target.AccountID,
			ModelID:   target.ModelID,
			AssetID:   target.EntityID,
			SizeBytes: sizeBytes,
		}
	case domain.TargetInput:
		route = routeAllocateInputSocket
		body = inputPairingRequest{
			AccountID:    target.AccountID,
			ModelID:      target.ModelID,
			InvocationID: target.InvocationID,
			InputID:      target.EntityID,
			SizeBytes:    sizeBytes,
		}
	default:
		return ports.ChannelHandle{}, fmt.Errorf("unknown transfer target kind %q", target.Kind)
	}

	var info socketInfo
	if err := t.client.post(ctx, token, route, nil, body, &info); err != nil {
		return ports.ChannelHandle{}, err
	}
	if info.PairingID == "" || info.Host == "" || info.Port <= 0 {
		return ports.ChannelHandle{}, fmt.Errorf("POST %s: incomplete socket info in response", route)
	}

	return ports.ChannelHandle{
		PairingID: info.PairingID,
		Address:   net.JoinHostPort(info.Host, strconv.Itoa(info.Port)),
		SizeBytes: sizeBytes,
	}, nil
}

func (t *TransferChannel) WriteAndDigest(ctx context.Context, handle ports.ChannelHandle, source io.Reader) (string, error) {
	return t.writer.WriteAndDigest(ctx, handle, source)
}

func (t *TransferChannel) Finalize(ctx context.Context, token domain.Secret, handle ports.ChannelHandle, checksum string) error {
	body := map[string]string{"pairing_id": handle.PairingID, "checksum": checksum}
	return t.client.post(ctx, token, routeCompleteTransfer, nil, body, nil)
}

type assetLinkRequest struct {
	AccountID domain.AccountID `json:"account_id"`
	ModelID   string           `json:"model_id"`
	AssetID   string           `json:"asset_id"`
	Links     []string         `json:"links"`
}

type inputLinkRequest struct {
	AccountID    domain.AccountID `json:"account_id"`
	ModelID      string           `json:"model_id"`
	InvocationID string           `json:"invocation_id"`
	InputID      string           `json:"input_id"`
	SignatureID  string           `json:"signature_id"`
	Links        []string         `json:"links"`
}

func (t *TransferChannel) SubmitRemoteLink(ctx context.Context, token domain.Secret, target domain.TransferTarget, url string) error {
	switch target.Kind {
	case domain.TargetAsset:
		return t.client.post(ctx, token, routeSubmitAssetLinks, nil, assetLinkRequest{
			AccountID: target.AccountID,
			ModelID:   target.ModelID,
			AssetID:   target.EntityID,
			Links:     []string{url},
		}, nil)
	case domain.TargetInput:
		return t.client.post(ctx, token, routeSubmitInputLinks, nil, inputLinkRequest{
			AccountID:    target.AccountID,
			ModelID:      target.ModelID,
			InvocationID: target.InvocationID,
			InputID:      target.EntityID,
			SignatureID:  target.SignatureID,
			Links:        []string{url},
		}, nil)
	default:
		return fmt.Errorf("unknown transfer target kind %q", target.Kind)
	}
}
