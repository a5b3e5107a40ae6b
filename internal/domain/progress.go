package domain

type Operation string

const (
	OperationModelUpload Operation = "model_upload"
	OperationInvocation  Operation = "invocation"
)

type Stage string

const (
	StageModelUpload  Stage = "Model_Upload"
	StageInvocation   Stage = "Invocation"
	StageInputsUpload Stage = "Inputs_Upload"
	StageFlags        Stage = "Flags"
	StageResults      Stage = "Results"
)

type StageStatus string

const (
	StatusStarting StageStatus = "Starting"
	StatusWaiting  StageStatus = "Waiting"
	StatusFinished StageStatus = "Finished"
)

type ProgressEvent struct {
	Operation Operation    `json:"operation"`
	EntityIDs []string     `json:"entity_ids"`
	AccountID AccountID    `json:"account_id"`
	Stage     Stage        `json:"stage"`
	Status    StageStatus  `json:"status"`
	Flags     []StatusFlag `json:"flags,omitempty"`
}

func (e ProgressEvent) IsFlagEvent() bool {
	return e.Flags != nil
}
