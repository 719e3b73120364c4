package model

type EventType string

const (
	EventTypeWineTasting  EventType = "Wine Tasting"
	EventTypeLaunchParty  EventType = "Launch Party"
	EventTypePrivateEvent EventType = "Private Event"
	EventTypeClass        EventType = "Class"
)

var EventTypes = []EventType{EventTypeWineTasting, EventTypeLaunchParty, EventTypePrivateEvent, EventTypeClass}

func (t EventType) Valid() bool { return oneOf(t, EventTypes) }

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        int64     `json:"date"`
	Type        EventType `json:"type"`
	Attendees   int       `json:"attendees"`
	MaxCapacity int       `json:"maxCapacity"`
}
