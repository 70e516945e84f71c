package views

import "github.com/spellforge/client-go/events"

// QueueStatusView is the per-bucket count of the latest queue snapshot.
type QueueStatusView struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Failed     int
}

// QueueStatus re-aggregates the whole snapshot. The backend sends full
// lists, so this is a recount every time, not an incremental counter.
func QueueStatus(s events.State) QueueStatusView {
	v := QueueStatusView{Total: len(s.Queue.Items)}
	for _, item := range s.Queue.Items {
		switch item.Status {
		case events.QueuePending:
			v.Pending++
		case events.QueueProcessing:
			v.Processing++
		case events.QueueCompleted:
			v.Completed++
		case events.QueueFailed:
			v.Failed++
		}
	}
	return v
}
