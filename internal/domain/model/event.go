package model

type EventKind string

const (
	EventPlay    EventKind = "media.play"
	EventResume  EventKind = "media.resume"
	EventStop    EventKind = "media.stop"
	EventPause   EventKind = "media.pause"
	EventUnknown EventKind = ""
)

// ParseEventKind maps a raw webhook event name to a known kind. Anything not
// handled by the dispatcher comes back as EventUnknown.
func ParseEventKind(name string) EventKind {
	switch k := EventKind(name); k {
	case EventPlay, EventResume, EventStop, EventPause:
		return k
	}
	return EventUnknown
}

type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeEpisode MediaType = "episode"
)

type Player struct {
	UUID          string `json:"uuid"`
	Local         bool   `json:"local"`
	PublicAddress string `json:"publicAddress"`
	Title         string `json:"title,omitempty"`
}

type Metadata struct {
	Title string    `json:"title"`
	Type  MediaType `json:"type"`
}

// Event is the decoded webhook payload. Only the fields the service acts on
// are kept; the player sends a lot more (Account, Server, Guid...).
type Event struct {
	Event    string   `json:"event"`
	Player   Player   `json:"Player"`
	Metadata Metadata `json:"Metadata"`
}

type Result struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

var (
	ResultNoPayload   = Result{Status: 400, Message: "no payload"}
	ResultNothingToDo = Result{Status: 200, Message: "nothing to do"}
	ResultUnfinished  = Result{Status: 200, Message: "Unfinished event"}
	ResultUnmanaged   = Result{Status: 400, Message: "Unmanaged event"}
	ResultFault       = Result{Status: 500, Message: "shit happens"}
)
