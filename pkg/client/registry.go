package client

import (
	"fmt"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime"
)

// Topics lists the topic names discovered on the current connection.
type Topics struct {
	Read  []string
	Write []string
}

// registry holds the handle sets captured once per connection. It is not
// modified after discovery. Topic names are not cached; they are looked
// up through the runtime whenever they are needed.
type registry struct {
	rt   runtime.Runtime
	info *edgedata.DiscoverInfo
}

// discover captures the handle sets of the runtime.
func discover(rt runtime.Runtime) (*registry, error) {
	info, err := rt.Discover()
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("discover: %w", edgedata.ErrProtocol)
	}
	return &registry{rt: rt, info: info.Clone()}, nil
}

// topics resolves every discovered handle to its topic, in discover
// order. Handles the runtime cannot resolve are reported through skip and
// left out.
func (r *registry) topics(skip func(h edgedata.Handle, err error)) *Topics {
	t := &Topics{
		Read:  make([]string, 0, len(r.info.ReadHandles)),
		Write: make([]string, 0, len(r.info.WriteHandles)),
	}
	for _, h := range r.info.ReadHandles {
		if topic, err := topicOf(r.rt, h); err != nil {
			skip(h, err)
		} else {
			t.Read = append(t.Read, topic)
		}
	}
	for _, h := range r.info.WriteHandles {
		if topic, err := topicOf(r.rt, h); err != nil {
			skip(h, err)
		} else {
			t.Write = append(t.Write, topic)
		}
	}
	return t
}

// topicOf resolves a handle to its topic name through the runtime.
func topicOf(rt runtime.Runtime, h edgedata.Handle) (string, error) {
	p, err := rt.Data(h)
	if err != nil {
		return "", fmt.Errorf("resolve topic of handle %d: %w", h, err)
	}
	return p.Topic, nil
}

func resolveReadable(rt runtime.Runtime, topic string) (edgedata.Handle, error) {
	h := rt.ReadableHandle(topic)
	if !h.IsValid() {
		return edgedata.InvalidHandle, &edgedata.TopicError{Topic: topic}
	}
	return h, nil
}

func resolveWriteable(rt runtime.Runtime, topic string) (edgedata.Handle, error) {
	h := rt.WriteableHandle(topic)
	if !h.IsValid() {
		return edgedata.InvalidHandle, &edgedata.TopicError{Topic: topic, Writeable: true}
	}
	return h, nil
}
