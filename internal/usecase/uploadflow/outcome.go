package uploadflow

// OutcomeStatus — итог одной попытки.
type OutcomeStatus int

const (
	Succeeded OutcomeStatus = iota
	Failed
	Rejected
)

func (s OutcomeStatus) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "rejected"
	}
}

// Outcome возвращается из Submit вместо паники или проброса ошибки наружу.
// Message — ровно тот текст, что показан в баннере.
type Outcome struct {
	Status  OutcomeStatus
	Message string
	Err     error
}

func (o Outcome) OK() bool {
	return o.Status == Succeeded
}
