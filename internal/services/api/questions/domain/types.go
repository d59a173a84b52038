// Package domain defines shared types for the questions API surface
package domain

import (
	"context"

	perr "panelgrid/internal/platform/errors"

	"panelgrid/internal/core/targeting"
)

// ErrNoAnswers means the question key has no published options
var ErrNoAnswers = perr.NotFoundf("no answers available")

// BankQuestion is one question-bank row before option resolution
type BankQuestion struct {
	Key        string
	Text       string
	Type       string
	CategoryID int64
}

// Category is a question category's display name and survey language
type Category struct {
	Name     string
	Language string
}

// QuestionPort is the question bank service interface
type QuestionPort interface {
	// ListByCountry publishes the screening questions available to a
	// country's panel, options included
	ListByCountry(ctx context.Context, country string) ([]targeting.Question, error)

	// Answers publishes the options for one question key
	Answers(ctx context.Context, key string) ([]targeting.Option, error)
}
