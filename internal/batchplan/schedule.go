package batchplan

import "time"

// Cook cycle cadence and deadline offsets. Orders close two weeks before a
// cook; deliveries land two days before it.
const (
	DefaultCycleDays   = 14
	orderByOffsetDays  = -14
	deliveryOffsetDays = -2
)

// Scheduler computes biweekly cook dates from a fixed epoch anchor. All
// dates are pinned to noon UTC so calendar arithmetic never drifts across
// timezone boundaries.
type Scheduler struct {
	epoch     time.Time
	cycleDays int
}

// NewScheduler builds a Scheduler anchored at the given epoch with the
// default 14-day cycle.
func NewScheduler(epoch time.Time) Scheduler {
	return Scheduler{epoch: AtNoonUTC(epoch), cycleDays: DefaultCycleDays}
}

// AtNoonUTC pins a timestamp to 12:00 UTC on its calendar date.
func AtNoonUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}

// NextCookDate returns the first cook date on or after today. Called exactly
// on a cycle boundary it returns that same date, not the following one.
func (s Scheduler) NextCookDate(today time.Time) time.Time {
	day := AtNoonUTC(today)
	if day.Before(s.epoch) {
		return s.epoch
	}

	daysPassed := int(day.Sub(s.epoch).Hours() / 24)
	cyclesPassed := daysPassed / s.cycleDays
	candidate := s.epoch.AddDate(0, 0, cyclesPassed*s.cycleDays)
	if candidate.Before(day) {
		candidate = candidate.AddDate(0, 0, s.cycleDays)
	}
	return candidate
}

// OrderByDate returns the last day customers can order into a cook date.
func (s Scheduler) OrderByDate(batchDate time.Time) time.Time {
	return AtNoonUTC(batchDate).AddDate(0, 0, orderByOffsetDays)
}

// DeliveryByDate returns the day the prior cycle's food must be delivered.
func (s Scheduler) DeliveryByDate(batchDate time.Time) time.Time {
	return AtNoonUTC(batchDate).AddDate(0, 0, deliveryOffsetDays)
}
