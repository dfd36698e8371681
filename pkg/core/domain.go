// Package core holds the project domain: name rules, the store contract and
// the service that orchestrates edits and removals.
package core

import (
	"fmt"
	"strings"
)

// ProjectExtension is appended to every project name to form its file name.
const ProjectExtension = ".yml"

// Project is a stored project definition identified by its name.
// The file behind it is opaque to the core.
type Project struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// EventType represents the type of change observed under the root.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// ParseEventType accepts an event type name in any case, e.g. "create".
func ParseEventType(s string) (EventType, error) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(s))); t {
	case EventCreate, EventModify, EventDelete:
		return t, nil
	}
	return "", fmt.Errorf("unknown event type %q (want create, modify or delete)", s)
}

// Event represents a change to a project file.
type Event struct {
	Type      EventType `json:"type"`
	Name      string    `json:"name"`
	Timestamp int64     `json:"timestamp"` // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Name
}
