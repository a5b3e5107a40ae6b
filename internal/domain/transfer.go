package domain

import (
	"fmt"
	"strings"
)

type Transport string

const (
	TransportLink      Transport = "Link"
	TransportPath      Transport = "Path"
	TransportStream    Transport = "Stream"
	TransportPrimitive Transport = "Primitive"
)

// ParseTransport accepts the canonical names case-insensitively; "File" is
// accepted as an alias of Path.
func ParseTransport(raw string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "link":
		return TransportLink, nil
	case "path", "file":
		return TransportPath, nil
	case "stream":
		return TransportStream, nil
	case "primitive":
		return TransportPrimitive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransport, raw)
	}
}

// TransferItem is one named piece of data destined for a remote entity.
// Payload is a string for Link, Path and Primitive and an io.Reader for Stream.
type TransferItem struct {
	Name      string
	Transport Transport
	Payload   any
}

type TargetKind string

const (
	TargetAsset TargetKind = "asset"
	TargetInput TargetKind = "input"
)

type TransferTarget struct {
	Name         string
	Kind         TargetKind
	EntityID     string
	AccountID    AccountID
	ModelID      string
	InvocationID string
	SignatureID  string
}

func AssetTargets(model Model) []TransferTarget {
	targets := make([]TransferTarget, 0, len(model.Assets))
	for _, asset := range model.Assets {
		targets = append(targets, TransferTarget{
			Name:      asset.AssetName,
			Kind:      TargetAsset,
			EntityID:  asset.ID,
			AccountID: model.AccountID,
			ModelID:   model.ID,
		})
	}
	return targets
}

func InputTargets(invocation Invocation) []TransferTarget {
	targets := make([]TransferTarget, 0, len(invocation.Inputs))
	for _, input := range invocation.Inputs {
		targets = append(targets, TransferTarget{
			Name:         input.DisplayTitle,
			Kind:         TargetInput,
			EntityID:     input.ID,
			AccountID:    input.AccountID,
			ModelID:      input.ModelID,
			InvocationID: input.InvocationID,
			SignatureID:  input.SignatureID,
		})
	}
	return targets
}
