// Package client is the application-facing edge data SDK.
//
// A Client owns one connection to the data bus runtime. It resolves topics
// to handles, decodes snapshots into typed data points, stages validated
// writes and commits them in batches:
//
//	c, err := client.New(rt, client.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	if !c.Connect(ctx) {
//		return errors.New("connect failed")
//	}
//	defer c.Disconnect(ctx)
//
//	c.SyncRead()
//	p := c.Read("Motor.Speed")
//
//	c.Write("Lamp.On", client.WriteRequest{Value: 1, Quality: []string{"VALID_VALUE"}})
//	c.SyncWrite()
//
// Change notifications for read topics and diagnostics from the SDK and the
// runtime reach the Handler configured on the client. The handler can be
// swapped at any time with SetHandler.
//
// Foreground calls are synchronous and meant to be made from a single
// goroutine. Event delivery happens on goroutines owned by the runtime.
package client
