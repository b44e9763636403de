package jejak

import "time"

// Event is the wire representation of a tracked behavioral event. Absent
// Data and Timestamp are omitted from the JSON body entirely rather than
// serialized as null; tests pin this choice.
type Event struct {
	Name      string                 `json:"name"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp *int64                 `json:"timestamp,omitempty"`
}

// TrackOptions carries the optional parts of a Track call. The zero value
// is valid: no data, timestamp assigned by the remote service.
type TrackOptions struct {
	// Data is attached to the event verbatim; the client does not interpret
	// or validate its shape.
	Data map[string]interface{}

	// Timestamp backdates the event. Transmitted as unix seconds.
	Timestamp *time.Time
}

func newEvent(name string, opts TrackOptions) Event {
	event := Event{
		Name: name,
		Data: opts.Data,
	}
	if opts.Timestamp != nil {
		unix := opts.Timestamp.Unix()
		event.Timestamp = &unix
	}
	return event
}
