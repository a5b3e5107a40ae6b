package ports

import "github.com/norman-ai/norman-cli/internal/domain"

type TransferMetrics interface {
	ObserveTransfer(kind domain.TargetKind, transport domain.Transport, bytes int64, err error)
	ObservePoll(operation domain.Operation, flags []domain.StatusFlag)
}

type NopMetrics struct{}

func (NopMetrics) ObserveTransfer(domain.TargetKind, domain.Transport, int64, error) {}

func (NopMetrics) ObservePoll(domain.Operation, []domain.StatusFlag) {}
