// Package webhooks implements Hashnode webhook support: signature
// generation and verification, payload parsing and validation, event
// dispatch, webhook registration mutations, and an HTTP receiver.
package webhooks

// Event is one of the six webhook event types Hashnode delivers.
type Event string

const (
	EventPostPublished       Event = "POST_PUBLISHED"
	EventPostUpdated         Event = "POST_UPDATED"
	EventPostDeleted         Event = "POST_DELETED"
	EventStaticPagePublished Event = "STATIC_PAGE_PUBLISHED"
	EventStaticPageEdited    Event = "STATIC_PAGE_EDITED"
	EventStaticPageDeleted   Event = "STATIC_PAGE_DELETED"
)

// AllEvents lists every recognized event type.
var AllEvents = []Event{
	EventPostPublished,
	EventPostUpdated,
	EventPostDeleted,
	EventStaticPagePublished,
	EventStaticPageEdited,
	EventStaticPageDeleted,
}

// validEvents is the membership set behind payload validation.
var validEvents = map[Event]struct{}{
	EventPostPublished:       {},
	EventPostUpdated:         {},
	EventPostDeleted:         {},
	EventStaticPagePublished: {},
	EventStaticPageEdited:    {},
	EventStaticPageDeleted:   {},
}

// IsValidEvent reports whether e is one of the six recognized event types.
func IsValidEvent(e Event) bool {
	_, ok := validEvents[e]
	return ok
}

// IsPostEvent reports whether e concerns a post. Together with
// IsStaticPageEvent this partitions the recognized events with no overlap.
func IsPostEvent(e Event) bool {
	switch e {
	case EventPostPublished, EventPostUpdated, EventPostDeleted:
		return true
	}
	return false
}

// IsStaticPageEvent reports whether e concerns a static page.
func IsStaticPageEvent(e Event) bool {
	switch e {
	case EventStaticPagePublished, EventStaticPageEdited, EventStaticPageDeleted:
		return true
	}
	return false
}
