package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/norman-ai/norman-cli/internal/domain"
	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type TransferOrchestrator struct {
	tokens  TokenSource
	channel ports.TransferChannel
	metrics ports.TransferMetrics
	log     logrus.FieldLogger
}

func NewTransferOrchestrator(tokens TokenSource, channel ports.TransferChannel, metrics ports.TransferMetrics, log logrus.FieldLogger) *TransferOrchestrator {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &TransferOrchestrator{
		tokens:  tokens,
		channel: channel,
		metrics: metrics,
		log:     log,
	}
}

type transferPair struct {
	target domain.TransferTarget
	item   domain.TransferItem
}

// UploadAll moves every item to the target of the same name. All transfers run
// concurrently and are allowed to settle; the failures are returned joined.
func (o *TransferOrchestrator) UploadAll(ctx context.Context, targets []domain.TransferTarget, items []domain.TransferItem) error {
	pairs, err := matchTransfers(targets, items)
	if err != nil {
		return err
	}

	errs := make([]error, len(pairs))
	var wg sync.WaitGroup
	for i, pair := range pairs {
		i, pair := i, pair
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = o.transfer(ctx, pair.target, pair.item)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func matchTransfers(targets []domain.TransferTarget, items []domain.TransferItem) ([]transferPair, error) {
	byName := make(map[string]domain.TransferItem, len(items))
	var mismatched []string
	for _, item := range items {
		if _, ok := byName[item.Name]; ok {
			mismatched = append(mismatched, fmt.Sprintf("item %q is given more than once", item.Name))
			continue
		}
		byName[item.Name] = item
	}

	pairs := make([]transferPair, 0, len(targets))
	matched := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		item, ok := byName[target.Name]
		if !ok {
			mismatched = append(mismatched, fmt.Sprintf("%s %q has no matching item", target.Kind, target.Name))
			continue
		}
		matched[target.Name] = struct{}{}
		pairs = append(pairs, transferPair{target: target, item: item})
	}

	var unmatched []string
	for name := range byName {
		if _, ok := matched[name]; !ok {
			unmatched = append(unmatched, fmt.Sprintf("item %q has no matching target", name))
		}
	}
	sort.Strings(unmatched)
	mismatched = append(mismatched, unmatched...)

	if len(mismatched) > 0 {
		return nil, &domain.ValidationError{Fields: mismatched, Reason: "transfer items do not match their targets"}
	}

	return pairs, nil
}

func (o *TransferOrchestrator) transfer(ctx context.Context, target domain.TransferTarget, item domain.TransferItem) error {
	log := o.log.WithFields(logrus.Fields{
		"name":      item.Name,
		"kind":      target.Kind,
		"entity_id": target.EntityID,
		"transport": item.Transport,
	})

	written, err := o.dispatch(ctx, target, item)
	o.metrics.ObserveTransfer(target.Kind, item.Transport, written, err)
	if err != nil {
		log.WithError(err).Warn("transfer failed")
		return fmt.Errorf("upload %s %q: %w", target.Kind, item.Name, err)
	}
	log.WithField("bytes", written).Debug("transfer finished")

	return nil
}

func (o *TransferOrchestrator) dispatch(ctx context.Context, target domain.TransferTarget, item domain.TransferItem) (int64, error) {
	switch item.Transport {
	case domain.TransportLink:
		url, ok := item.Payload.(string)
		if !ok || url == "" {
			return 0, fmt.Errorf("%w: link transport needs a url string, got %T", domain.ErrUnsupportedPayload, item.Payload)
		}
		token, err := o.tokens.Token(ctx)
		if err != nil {
			return 0, err
		}
		if err := o.channel.SubmitRemoteLink(ctx, token, target, url); err != nil {
			return 0, fmt.Errorf("submit link: %w", err)
		}
		return 0, nil

	case domain.TransportPath:
		path, ok := item.Payload.(string)
		if !ok || path == "" {
			return 0, fmt.Errorf("%w: path transport needs a file path string, got %T", domain.ErrUnsupportedPayload, item.Payload)
		}
		file, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()
		return o.uploadStream(ctx, target, file)

	case domain.TransportStream:
		reader, ok := item.Payload.(io.Reader)
		if !ok {
			return 0, fmt.Errorf("%w: stream transport needs an io.Reader, got %T", domain.ErrUnsupportedPayload, item.Payload)
		}
		return o.uploadStream(ctx, target, reader)

	case domain.TransportPrimitive:
		return o.uploadStream(ctx, target, bytes.NewReader([]byte(primitiveText(item.Payload))))

	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTransport, item.Transport)
	}
}

func primitiveText(payload any) string {
	switch v := payload.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (o *TransferOrchestrator) uploadStream(ctx context.Context, target domain.TransferTarget, reader io.Reader) (int64, error) {
	size, err := streamSize(reader)
	if err != nil {
		return 0, err
	}

	token, err := o.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}

	handle, err := o.channel.Allocate(ctx, token, target, size)
	if err != nil {
		return 0, fmt.Errorf("allocate channel: %w", err)
	}

	checksum, err := o.channel.WriteAndDigest(ctx, handle, reader)
	if err != nil {
		return 0, fmt.Errorf("write channel %s: %w", handle.PairingID, err)
	}

	token, err = o.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}
	if err := o.channel.Finalize(ctx, token, handle, checksum); err != nil {
		return 0, fmt.Errorf("finalize channel %s: %w", handle.PairingID, err)
	}

	return size, nil
}

type statter interface {
	Stat() (os.FileInfo, error)
}

type lener interface {
	Len() int
}

type sizer interface {
	Size() int64
}

// streamSize reports how many bytes remain in r without consuming it. A
// regular file that was already read from only counts past its offset.
func streamSize(r io.Reader) (int64, error) {
	switch v := r.(type) {
	case statter:
		info, err := v.Stat()
		if err != nil {
			return 0, fmt.Errorf("stat stream: %w", err)
		}
		size := info.Size()
		if seeker, ok := r.(io.Seeker); ok && info.Mode().IsRegular() {
			offset, err := seeker.Seek(0, io.SeekCurrent)
			if err != nil {
				return 0, fmt.Errorf("stream offset: %w", err)
			}
			size = max(size-offset, 0)
		}
		return size, nil
	case lener:
		return int64(v.Len()), nil
	case sizer:
		return v.Size(), nil
	default:
		return 0, fmt.Errorf("%w: cannot determine the size of %T", domain.ErrUnsupportedPayload, r)
	}
}
