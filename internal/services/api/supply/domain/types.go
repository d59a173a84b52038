// Package domain defines shared types for the supply API surface
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	perr "panelgrid/internal/platform/errors"

	"panelgrid/internal/core/targeting"
)

// Sentinels for the two "nothing to return" shapes. Both surface to the
// caller as a not-found with the legacy message; the distinct identities
// keep the stages tellable apart in logs and tests.
var (
	// ErrNoAssignments means the supplier has no live group assignments at all
	ErrNoAssignments = perr.NotFoundf("no surveys available")

	// ErrNoMatchingDetail means assignments exist but none survived the
	// detail join (or the changed-since filter)
	ErrNoMatchingDetail = perr.NotFoundf("no surveys available")
)

// Assignment links a supplier to one live group
type Assignment struct {
	GroupID    int64           // job record backing the assignment
	SurveyID   int64
	SupplierID string
	RawRate    decimal.Decimal // flat amount or percent; never leaves the service
}

// GroupDetail is the group record joined for one assigned survey
type GroupDetail struct {
	SurveyID            int64
	BaseCPI             decimal.Decimal
	IncidenceRate       int
	LengthOfInterview   int
	Country             string
	LanguageID          *int64
	DeviceCode          int
	GroupTypeCode       *int
	CreatedAt           time.Time // zero when the record carries no date
	ModifiedAt          time.Time
	ReContact           bool
	EncodedSurveyNumber string
	QuestionRefs        []targeting.QuestionRef
}
