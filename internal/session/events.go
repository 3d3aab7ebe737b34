package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by DecodeEvent for payloads that are not one of
// the known event kinds.
var ErrUnknownEvent = errors.New("unknown event")

// Event is an inbound request from the UI boundary. The set of events is
// closed: only the types in this package implement it.
type Event interface {
	event()
}

// SelectOne selects or deselects a single slug.
type SelectOne struct {
	Slug     string
	Selected bool
}

// SelectMany selects or deselects a batch of slugs in one step.
type SelectMany struct {
	Slugs    []string
	Selected bool
}

// Reorder moves the display entry MovedID to the slot held by TargetID.
type Reorder struct {
	MovedID  string
	TargetID string
}

// RequestCatalog asks for the catalog of a locale to be loaded.
type RequestCatalog struct {
	Locale string
}

func (SelectOne) event()      {}
func (SelectMany) event()     {}
func (Reorder) event()        {}
func (RequestCatalog) event() {}

// envelope is the wire shape of an event.
type envelope struct {
	Command  string   `json:"command"`
	Slug     string   `json:"slug,omitempty"`
	Slugs    []string `json:"slugs,omitempty"`
	Selected *bool    `json:"selected,omitempty"`
	MovedID  string   `json:"movedId,omitempty"`
	TargetID string   `json:"targetId,omitempty"`
	Locale   string   `json:"locale,omitempty"`
	Lang     string   `json:"lang,omitempty"`
}

const (
	cmdSelectOne      = "selectOne"
	cmdSelectMany     = "selectMany"
	cmdReorder        = "reorder"
	cmdRequestCatalog = "requestCatalog"
)

// DecodeEvent parses a JSON event of the form {"command": "...", ...}.
// Payloads with an unknown command or missing required fields are rejected
// with an error wrapping ErrUnknownEvent.
func DecodeEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEvent, err)
	}

	switch env.Command {
	case cmdSelectOne:
		if env.Slug == "" || env.Selected == nil {
			return nil, fmt.Errorf("%w: %s needs slug and selected", ErrUnknownEvent, env.Command)
		}
		return SelectOne{Slug: env.Slug, Selected: *env.Selected}, nil
	case cmdSelectMany:
		if env.Selected == nil {
			return nil, fmt.Errorf("%w: %s needs selected", ErrUnknownEvent, env.Command)
		}
		return SelectMany{Slugs: env.Slugs, Selected: *env.Selected}, nil
	case cmdReorder:
		if env.MovedID == "" || env.TargetID == "" {
			return nil, fmt.Errorf("%w: %s needs movedId and targetId", ErrUnknownEvent, env.Command)
		}
		return Reorder{MovedID: env.MovedID, TargetID: env.TargetID}, nil
	case cmdRequestCatalog:
		locale := env.Locale
		if locale == "" {
			locale = env.Lang
		}
		return RequestCatalog{Locale: locale}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Command)
}

// EncodeEvent is the inverse of DecodeEvent.
func EncodeEvent(ev Event) ([]byte, error) {
	var env envelope
	switch e := ev.(type) {
	case SelectOne:
		env = envelope{Command: cmdSelectOne, Slug: e.Slug, Selected: &e.Selected}
	case SelectMany:
		env = envelope{Command: cmdSelectMany, Slugs: e.Slugs, Selected: &e.Selected}
	case Reorder:
		env = envelope{Command: cmdReorder, MovedID: e.MovedID, TargetID: e.TargetID}
	case RequestCatalog:
		env = envelope{Command: cmdRequestCatalog, Locale: e.Locale}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return json.Marshal(env)
}
