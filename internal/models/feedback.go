package models

// FeedbackState — визуальное состояние баннера обратной связи.
type FeedbackState int

const (
	FeedbackNeutral FeedbackState = iota
	FeedbackError
	FeedbackSuccess
)

func (s FeedbackState) String() string {
	switch s {
	case FeedbackError:
		return "error"
	case FeedbackSuccess:
		return "success"
	default:
		return "neutral"
	}
}
