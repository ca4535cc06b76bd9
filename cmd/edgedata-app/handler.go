package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// printHandler prints events and log messages the way the demo expects.
type printHandler struct {
	mu  sync.Mutex
	out io.Writer
}

func (h *printHandler) OnDataChange(p edgedata.DataPoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, "User Event Notification: %s\n", p)
}

func (h *printHandler) OnLogMessage(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, "User Logger: %s\n", strings.TrimRight(text, "\n"))
}
