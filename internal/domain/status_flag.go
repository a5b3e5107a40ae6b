package domain

type FlagValue string

const (
	FlagPending  FlagValue = "Pending"
	FlagRunning  FlagValue = "Running"
	FlagFinished FlagValue = "Finished"
	FlagError    FlagValue = "Error"
)

type FlagCategory string

const (
	FlagCategoryModel      FlagCategory = "Model_Flags"
	FlagCategoryAsset      FlagCategory = "Asset_Flags"
	FlagCategoryInvocation FlagCategory = "Invocation_Flags"
	FlagCategoryInput      FlagCategory = "Input_Flags"
)

type StatusFlag struct {
	EntityID string    `json:"entity_id"`
	Name     string    `json:"flag_name,omitempty"`
	Value    FlagValue `json:"flag_value"`
}

func FailedFlags(flags []StatusFlag) []StatusFlag {
	var failed []StatusFlag
	for _, flag := range flags {
		if flag.Value == FlagError {
			failed = append(failed, flag)
		}
	}
	return failed
}

func AllFinished(flags []StatusFlag) bool {
	for _, flag := range flags {
		if flag.Value != FlagFinished {
			return false
		}
	}
	return true
}
