// models/event.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// EventSummary is one row of the upcoming event listing.
type EventSummary struct {
	ID        string `json:"EventUUID" bson:"EventUUID"`
	Name      string `json:"EventName" bson:"EventName"`
	Organizer string `json:"EventOrganizer" bson:"EventOrganizer"`
	City      string `json:"EventCity" bson:"EventCity"`
}

// EventDetail is the full record for a single event. Every field may be
// missing on the wire.
type EventDetail struct {
	ID          string    `json:"EventUUID" bson:"EventUUID"`
	Name        string    `json:"EventName" bson:"EventName"`
	Description string    `json:"EventDetails" bson:"EventDetails"`
	ImageURL    string    `json:"EventImage" bson:"EventImage"`
	Venue       string    `json:"EventVenue" bson:"EventVenue"`
	StartDate   EventTime `json:"EventStartDate" bson:"EventStartDate"`
	EndDate     EventTime `json:"EventEndDate" bson:"EventEndDate"`
	City        string    `json:"EventCity" bson:"EventCity"`
	MapURL      string    `json:"EventMapLink" bson:"EventMapLink"`
}

// Event is the stored catalog record served by the development server.
type Event struct {
	EventDetail `bson:",inline"`
	Organizer   string    `json:"EventOrganizer" bson:"EventOrganizer"`
	CreatedAt   time.Time `json:"-" bson:"created_at"`
}

// Summary projects the stored record onto a listing row.
func (e Event) Summary() EventSummary {
	return EventSummary{
		ID:        e.ID,
		Name:      e.Name,
		Organizer: e.Organizer,
		City:      e.City,
	}
}

// eventTimeLayouts are tried in order when decoding a date. Datetimes
// without a zone are wall clock times in the viewer's zone; zoned values and
// bare dates are instants in UTC.
var eventTimeLayouts = []struct {
	layout   string
	floating bool
}{
	{time.RFC3339Nano, false},
	{floatingLayout, true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", false},
}

const floatingLayout = "2006-01-02T15:04:05"

// EventTime is an optional timestamp. Empty, null and unparseable values
// decode to the zero EventTime, which reports Valid() == false.
type EventTime struct {
	time.Time
	// Floating marks a wall clock time that carried no zone. Its fields are
	// shown as written instead of being converted.
	Floating bool
}

// NewEventTime wraps t.
func NewEventTime(t time.Time) EventTime {
	return EventTime{Time: t}
}

// Valid reports whether a date was present.
func (t EventTime) Valid() bool {
	return !t.IsZero()
}

// ParseEventTime decodes s using the accepted layouts.
func ParseEventTime(s string) (EventTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EventTime{}, false
	}
	for _, l := range eventTimeLayouts {
		if l.floating {
			if parsed, err := time.ParseInLocation(l.layout, s, time.Local); err == nil {
				return EventTime{Time: parsed, Floating: true}, true
			}
			continue
		}
		if parsed, err := time.Parse(l.layout, s); err == nil {
			return EventTime{Time: parsed}, true
		}
	}
	return EventTime{}, false
}

// In returns t for display in loc. Floating times keep their wall clock.
func (t EventTime) In(loc *time.Location) time.Time {
	if t.Floating || loc == nil {
		return t.Time
	}
	return t.Time.In(loc)
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = EventTime{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Non-string dates are treated as absent.
		*t = EventTime{}
		return nil
	}
	parsed, _ := ParseEventTime(raw)
	*t = parsed
	return nil
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return []byte(`""`), nil
	}
	if t.Floating {
		return json.Marshal(t.Format(floatingLayout))
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// MarshalBSONValue stores valid dates as BSON datetimes and absent ones as null.
func (t EventTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !t.Valid() {
		return bson.MarshalValue(nil)
	}
	return bson.MarshalValue(t.Time)
}

func (t *EventTime) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: typ, Value: data}
	if parsed, ok := raw.TimeOK(); ok {
		*t = EventTime{Time: parsed}
		return nil
	}
	if s, ok := raw.StringValueOK(); ok {
		*t, _ = ParseEventTime(s)
		return nil
	}
	*t = EventTime{}
	return nil
}
