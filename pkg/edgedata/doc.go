// Package edgedata defines the data model of the edge data bus.
//
// A data point is addressed by a topic and, once discovered, by an opaque
// handle. Read and write handles live in disjoint namespaces: the same topic
// may have both.
//
// # Values
//
// Each handle carries a DataType fixed at discovery time. The value of a
// point is a sealed sum type keyed by that type:
//
//	switch v := p.Value.(type) {
//	case edgedata.Int32:
//	    ...
//	case edgedata.Double64:
//	    ...
//	}
//
// Encode validates caller input against a target type using the exact
// inclusive bounds of that type. Decode is its inverse for data read back
// from the runtime.
//
// # Quality
//
// Quality is a packed bitmask. A raw value of zero means "Valid" and is
// exclusive with every other flag:
//
//	edgedata.DecodeQuality(0) // {Valid}
//	edgedata.DecodeQuality(3) // {NotTopical, FlagOverflow}
//
// # Status Codes
//
// Runtime calls report a Status. Status.Err converts non-OK codes to errors
// that match the package sentinels with errors.Is.
package edgedata
