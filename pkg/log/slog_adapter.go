package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Data != nil:
		attrs = append(attrs,
			slog.String("kind", event.Data.Kind.String()),
			slog.String("topic", event.Data.Topic),
			slog.Uint64("handle", uint64(event.Data.Handle)),
			slog.String("type", event.Data.Type.String()),
			slog.String("value", event.Data.Value),
			slog.Uint64("quality", uint64(event.Data.Quality)),
			slog.Int64("timestamp", event.Data.Timestamp),
		)
	case event.Sync != nil:
		attrs = append(attrs,
			slog.String("kind", event.Sync.Kind.String()),
			slog.Int("handles", len(event.Sync.Handles)),
			slog.String("status", event.Sync.Status.String()),
		)
		if event.Sync.Duration > 0 {
			attrs = append(attrs, slog.Duration("duration", event.Sync.Duration))
		}
	case event.Message != nil:
		attrs = append(attrs,
			slog.String("source", event.Message.Source.String()),
			slog.String("text", event.Message.Text),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Topic != "" {
			attrs = append(attrs, slog.String("topic", event.Error.Topic))
		}
		if event.Error.Code != nil {
			attrs = append(attrs, slog.String("status", event.Error.Code.String()))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "capture", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
