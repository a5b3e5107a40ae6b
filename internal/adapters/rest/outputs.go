package rest

import (
	"context"
	"io"
	"net/http"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
)

type OutputFetcher struct {
	client *Client
}

func NewOutputFetcher(client *Client) *OutputFetcher {
	return &OutputFetcher{client: client}
}

var _ ports.OutputFetcher = (*OutputFetcher)(nil)

// StreamOutput opens the raw body of one invocation output. The caller closes
// the returned reader.
func (f *OutputFetcher) StreamOutput(ctx context.Context, token domain.Secret, accountID domain.AccountID, modelID, invocationID, outputID string) (io.ReadCloser, error) {
	resp, err := f.client.request(ctx, token).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "application/octet-stream").
		SetPathParams(map[string]string{
			"account_id":    string(accountID),
			"model_id":      modelID,
			"invocation_id": invocationID,
			"output_id":     outputID,
		}).
		Get(routeInvocationOutput)
	if err != nil {
		return nil, f.client.decode(resp, err, http.MethodGet, routeInvocationOutput, nil)
	}

	body := resp.RawBody()
	if resp.IsError() {
		defer body.Close()
		data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return nil, &APIError{
			Method:     http.MethodGet,
			Route:      routeInvocationOutput,
			StatusCode: resp.StatusCode(),
			Body:       string(data),
			RequestID:  resp.Request.Header.Get(requestIDHeader),
		}
	}

	return body, nil
}
