package domain

type Invocation struct {
	ID        string                `json:"id"`
	AccountID AccountID             `json:"account_id"`
	ModelID   string                `json:"model_id"`
	Inputs    []InvocationSignature `json:"inputs"`
	Outputs   []InvocationSignature `json:"outputs"`
}

type InvocationSignature struct {
	ID           string    `json:"id"`
	SignatureID  string    `json:"signature_id"`
	DisplayTitle string    `json:"display_title"`
	AccountID    AccountID `json:"account_id"`
	ModelID      string    `json:"model_id"`
	InvocationID string    `json:"invocation_id"`
}

func (i Invocation) InputIDs() []string {
	ids := make([]string, 0, len(i.Inputs))
	for _, input := range i.Inputs {
		ids = append(ids, input.ID)
	}
	return ids
}
