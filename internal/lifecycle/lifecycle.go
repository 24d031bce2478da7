// Package lifecycle defines the asset status vocabulary and the audit event
// appended on every status transition. Both front ends record transitions
// through this package so the audit trail is uniform.
package lifecycle

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownStatus = errors.New("unknown status")

const (
	StatusCollected            = "collected"
	StatusInAssessment         = "in_assessment"
	StatusInRefurbishment      = "in_refurbishment"
	StatusReadyForDistribution = "ready_for_distribution"
	StatusDonated              = "donated"
	StatusRecycled             = "recycled"
	StatusScrapped             = "scrapped"
)

// InitialStatus is assigned to every asset on intake.
const InitialStatus = StatusCollected

// Statuses lists every recognised status in display order. There is no
// transition graph: any status may follow any other, validation is
// membership only.
var Statuses = []string{
	StatusCollected,
	StatusInAssessment,
	StatusInRefurbishment,
	StatusReadyForDistribution,
	StatusDonated,
	StatusRecycled,
	StatusScrapped,
}

var labels = map[string]string{
	StatusCollected:            "Collected",
	StatusInAssessment:         "In assessment",
	StatusInRefurbishment:      "In refurbishment",
	StatusReadyForDistribution: "Ready for distribution",
	StatusDonated:              "Donated",
	StatusRecycled:             "Recycled",
	StatusScrapped:             "Scrapped",
}

// Event is one immutable audit entry: the status transitioned into, who
// recorded it and when. Events are only ever appended.
type Event struct {
	Status     string
	Note       string
	RecordedBy string
	Location   string
	RecordedAt time.Time
}

// Validate fails with ErrUnknownStatus when the status is not in the fixed set.
func Validate(status string) error {
	if _, ok := labels[status]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return nil
}

// Known reports whether the status is in the fixed set.
func Known(status string) bool {
	_, ok := labels[status]
	return ok
}

// Label returns the human readable label for a status. Unrecognised values
// are returned as-is so stale data still renders.
func Label(status string) string {
	if l, ok := labels[status]; ok {
		return l
	}
	return status
}

// NewEvent builds an audit entry for a transition into status. The caller is
// expected to have validated the status first.
func NewEvent(status, note, recordedBy, location string) Event {
	return Event{
		Status:     status,
		Note:       note,
		RecordedBy: recordedBy,
		Location:   location,
		RecordedAt: time.Now().UTC(),
	}
}
