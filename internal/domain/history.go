package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"
	"github.com/PawelJakubczyk/PromptJourney-sub000/internal/validate"
)

// PromptHistory records one prompt submitted against a model version.
// ID and CreatedOn are assigned by the store; they are zero until the
// record has been persisted.
type PromptHistory struct {
	ID        uuid.UUID
	Prompt    Prompt
	Version   ModelVersion
	CreatedOn time.Time
}

// PromptHistoryInput carries raw prompt history fields.
type PromptHistoryInput struct {
	Prompt  string
	Version string
}

// NewPromptHistory builds an unsaved PromptHistory.
func NewPromptHistory(prompt result.Result[Prompt], version result.Result[ModelVersion]) result.Result[PromptHistory] {
	return result.Map(validate.Combine2(prompt, version),
		func(t validate.Tuple2[Prompt, ModelVersion]) PromptHistory {
			return PromptHistory{Prompt: t.V1, Version: t.V2}
		})
}

// ParsePromptHistory validates raw input and builds an unsaved PromptHistory.
func ParsePromptHistory(in PromptHistoryInput) result.Result[PromptHistory] {
	return NewPromptHistory(NewPrompt(in.Prompt), NewModelVersion(in.Version))
}

// DateRange is an inclusive range of timestamps.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange fails when from is after to.
func NewDateRange(from, to time.Time) result.Result[DateRange] {
	if from.After(to) {
		return result.Fail[DateRange](result.Rule("from", "from must not be after to"))
	}
	return result.Ok(DateRange{From: from, To: to})
}
