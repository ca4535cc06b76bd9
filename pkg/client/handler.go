package client

import (
	"log/slog"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// Handler receives change notifications and diagnostic messages.
//
// Both methods may be called from runtime goroutines concurrently with
// foreground calls on the Client.
type Handler interface {
	// OnDataChange is called with the decoded point of a subscribed read
	// topic whenever the runtime reports a change.
	OnDataChange(point edgedata.DataPoint)

	// OnLogMessage is called with diagnostic text from the SDK and the
	// runtime.
	OnLogMessage(text string)
}

// NoopHandler discards everything.
type NoopHandler struct{}

func (NoopHandler) OnDataChange(edgedata.DataPoint) {}
func (NoopHandler) OnLogMessage(string)             {}

// HandlerFuncs adapts plain functions to the Handler interface.
// Nil fields are skipped.
type HandlerFuncs struct {
	Data func(point edgedata.DataPoint)
	Log  func(text string)
}

func (h HandlerFuncs) OnDataChange(point edgedata.DataPoint) {
	if h.Data != nil {
		h.Data(point)
	}
}

func (h HandlerFuncs) OnLogMessage(text string) {
	if h.Log != nil {
		h.Log(text)
	}
}

// SlogHandler writes log messages and data changes to a slog.Logger.
type SlogHandler struct {
	Logger *slog.Logger
}

// NewSlogHandler creates a handler logging to logger.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	return &SlogHandler{Logger: logger}
}

func (h *SlogHandler) OnDataChange(point edgedata.DataPoint) {
	h.Logger.Info("data change",
		slog.String("topic", point.Topic),
		slog.String("value", valueString(point.Value)),
		slog.String("type", point.Tag()),
		slog.Any("quality", point.QualitySet().Names()),
		slog.Int64("timestamp", point.Timestamp),
	)
}

func (h *SlogHandler) OnLogMessage(text string) {
	h.Logger.Info(text)
}

// MultiHandler fans out to several handlers in order.
type MultiHandler []Handler

func (m MultiHandler) OnDataChange(point edgedata.DataPoint) {
	for _, h := range m {
		if h != nil {
			h.OnDataChange(point)
		}
	}
}

func (m MultiHandler) OnLogMessage(text string) {
	for _, h := range m {
		if h != nil {
			h.OnLogMessage(text)
		}
	}
}

// handlerRef boxes a Handler so it can live in an atomic.Pointer.
type handlerRef struct {
	Handler
}

func valueString(v edgedata.Value) string {
	if v == nil {
		return "none"
	}
	return v.String()
}
