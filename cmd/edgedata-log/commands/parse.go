// Package commands implements the edgedata-log CLI commands.
package commands

import (
	"fmt"
	"strings"

	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "data":
		return log.CategoryData, nil
	case "sync":
		return log.CategorySync, nil
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, data, sync, message, or error)", s)
	}
}

// eventType returns a short label for the payload of an event.
func eventType(e log.Event) string {
	switch {
	case e.StateChange != nil:
		return "State"
	case e.Data != nil:
		return e.Data.Kind.String()
	case e.Sync != nil:
		return e.Sync.Kind.String()
	case e.Message != nil:
		return "Message"
	case e.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
