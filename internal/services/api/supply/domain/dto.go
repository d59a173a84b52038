// Package domain holds DTOs for the supply HTTP and service contracts
package domain

import (
	"time"

	"panelgrid/internal/core/targeting"
)

// ListInput selects the live catalog for one supplier.
// ChangedSince, when set, keeps only groups modified at or after it (UTC)
type ListInput struct {
	SupplierID   string
	ChangedSince *time.Time
}

// ResolvedGroup is the published group shape. Field names follow the wire
// contract suppliers already integrate against, capitalization included.
// Internal ids and raw commission inputs never appear here
type ResolvedGroup struct {
	SurveyID      int64                 `json:"surveyId" example:"48231"`
	CPI           string                `json:"CPI" example:"2.50"`
	LOI           int                   `json:"LOI" example:"15"`
	IR            int                   `json:"IR" example:"35"`
	Country       string                `json:"Country" example:"US"`
	Language      string                `json:"Language,omitempty" example:"English"`
	GroupType     string                `json:"groupType" example:"Adhoc"`
	DeviceType    string                `json:"deviceType" example:"All Devices"`
	JobCategory   string                `json:"jobCategory,omitempty" example:"Healthcare"`
	CreatedDate   string                `json:"createdDate,omitempty" example:"2026-03-02 07:15:00"`
	ModifiedDate  string                `json:"modifiedDate,omitempty" example:"2026-03-04 11:42:09"`
	ReContact     bool                  `json:"reContact" example:"false"`
	EntryLink     string                `json:"entryLink"`
	TestEntryLink string                `json:"testEntryLink"`
	Targeting     []targeting.Question  `json:"targeting"`
	IsQuota       bool                  `json:"isQuota" example:"false"`
}
