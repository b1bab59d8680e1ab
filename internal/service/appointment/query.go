package appointment

import (
	"sort"

	"github.com/bellitaspa/agenda-api/internal/model"
)

// statusRank orders listings for display. This is a deliberate design
// constant, not derived behavior.
var statusRank = map[model.AppointmentStatus]int{
	model.AppointmentStatusPending:   0,
	model.AppointmentStatusConfirmed: 1,
	model.AppointmentStatusCompleted: 2,
	model.AppointmentStatusCancelled: 3,
}

// Unrecognized statuses sort last.
const unknownStatusRank = 99

func rank(status model.AppointmentStatus) int {
	if r, ok := statusRank[status]; ok {
		return r
	}
	return unknownStatusRank
}

// Query filters an in-memory snapshot by exact date and status, then
// orders it by status rank. The sort is stable: within equal rank the
// snapshot's relative order is preserved, so callers wanting a secondary
// key apply it upstream. No side effects on the input slice.
func Query(appointments []*model.Appointment, filters model.AppointmentFilters) []*model.Appointment {
	out := make([]*model.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if filters.Date != nil && !appointment.Date.Equal(*filters.Date) {
			continue
		}
		if filters.Status != "" && filters.Status != model.StatusFilterAll &&
			string(appointment.Status) != filters.Status {
			continue
		}
		out = append(out, appointment)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Status) < rank(out[j].Status)
	})
	return out
}
