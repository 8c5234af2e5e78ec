package planner

import "errors"

// ErrMissingFields is returned when subject, time range, or goal is empty.
var ErrMissingFields = errors.New("subject, time, and goal are required")

// ErrRangeInverted indicates the end of a time range precedes its start.
var ErrRangeInverted = errors.New("end time is before start time")

// ErrInvalidIndex indicates the caller referenced an entry index outside the store bounds.
var ErrInvalidIndex = errors.New("entry index out of range")
