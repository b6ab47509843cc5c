package models

import "time"

// ScheduleExport is the legacy payload listing every facility with the schedules it displays.
type ScheduleExport struct {
	Facilities   []Facility
	ETag         string
	LastModified time.Time
}
