package notification

// Event identifies what a notification is about. The same value is used as
// the SSE event name on the push channel.
type Event string

const (
	EventRequestReceived  Event = "fitting_room_request_received"
	EventRequestCompleted Event = "fitting_room_request_completed"
	EventRequestCancelled Event = "fitting_room_request_cancelled"
	EventRequestReady     Event = "fitting_room_request_ready"
	EventStaffResponse    Event = "staff_response"
)

func (e Event) String() string {
	return string(e)
}
