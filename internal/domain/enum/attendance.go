package enum

// AttendanceEventType represents a raw attendance scan or leave marker.
// Events are append-only; the day's status is derived from them.
type AttendanceEventType string

const (
	EventCheckIn    AttendanceEventType = "CHECK_IN"
	EventCheckOut   AttendanceEventType = "CHECK_OUT"
	EventPermission AttendanceEventType = "PERMISSION"
	EventSick       AttendanceEventType = "SICK"
	EventLeave      AttendanceEventType = "LEAVE"
)

// Valid reports whether the event type is a known value
func (t AttendanceEventType) Valid() bool {
	switch t {
	case EventCheckIn, EventCheckOut, EventPermission, EventSick, EventLeave:
		return true
	}
	return false
}

// IsLeaveType reports whether the event locks the day's status and clears
// check-in/out times.
func (t AttendanceEventType) IsLeaveType() bool {
	switch t {
	case EventPermission, EventSick, EventLeave:
		return true
	}
	return false
}

// AttendanceStatus is the derived per-day status of a barber.
type AttendanceStatus string

const (
	StatusHadir  AttendanceStatus = "HADIR"  // present
	StatusIzin   AttendanceStatus = "IZIN"   // permission
	StatusSakit  AttendanceStatus = "SAKIT"  // sick
	StatusLibur  AttendanceStatus = "LIBUR"  // day off
	StatusPulang AttendanceStatus = "PULANG" // checked out only
)

// Valid reports whether the status is a known value
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusLibur, StatusPulang:
		return true
	}
	return false
}

// StatusForLeaveEvent maps a leave-type event to the status it forces.
func StatusForLeaveEvent(t AttendanceEventType) AttendanceStatus {
	switch t {
	case EventPermission:
		return StatusIzin
	case EventSick:
		return StatusSakit
	case EventLeave:
		return StatusLibur
	}
	return StatusHadir
}
