package socket

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/norman-ai/norman-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const DefaultDialTimeout = 30 * time.Second

var ErrShortWrite = errors.New("stream size does not match the allocated channel")

// Writer streams bytes into an allocated channel over raw TCP. The pairing id
// is sent as the first line so the remote side can attribute the stream.
type Writer struct {
	dialer net.Dialer
	log    logrus.FieldLogger
}

func NewWriter(dialTimeout time.Duration, log logrus.FieldLogger) *Writer {
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Writer{
		dialer: net.Dialer{Timeout: dialTimeout},
		log:    log,
	}
}

// WriteAndDigest copies source to the channel and returns the hex sha256 of
// every byte written.
func (w *Writer) WriteAndDigest(ctx context.Context, handle ports.ChannelHandle, source io.Reader) (checksum string, err error) {
	if handle.Address == "" {
		return "", fmt.Errorf("channel %s has no address", handle.PairingID)
	}

	conn, err := w.dialer.DialContext(ctx, "tcp", handle.Address)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", fmt.Errorf("dial %s: %w", handle.Address, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil && ctx.Err() == nil {
			err = fmt.Errorf("close %s: %w", handle.Address, closeErr)
		}
	}()
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if _, err := io.WriteString(conn, handle.PairingID+"\n"); err != nil {
		return "", w.writeErr(ctx, handle, err)
	}

	digest := sha256.New()
	written, err := io.Copy(io.MultiWriter(conn, digest), source)
	if err != nil {
		return "", w.writeErr(ctx, handle, err)
	}
	if handle.SizeBytes > 0 && written != handle.SizeBytes {
		return "", fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, written, handle.SizeBytes)
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.CloseWrite(); err != nil {
			return "", w.writeErr(ctx, handle, err)
		}
	}

	checksum = hex.EncodeToString(digest.Sum(nil))
	w.log.WithFields(logrus.Fields{
		"pairing_id": handle.PairingID,
		"address":    handle.Address,
		"bytes":      written,
	}).Debug("channel written")

	return checksum, nil
}

func (w *Writer) writeErr(ctx context.Context, handle ports.ChannelHandle, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("write %s: %w", handle.Address, err)
}
