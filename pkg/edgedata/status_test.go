package edgedata

import (
	"errors"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusNOK, "NOK"},
		{StatusUnknownTopic, "UNKNOWN_TOPIC"},
		{StatusInvalidValue, "INVALID_VALUE"},
		{StatusConnectivityError, "ERROR_CONNECTIVITY"},
		{StatusUnknownHandle, "UNKNOWN_HANDLE"},
		{Status(-9), "UNKNOWN(-9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int32(tt.status), got, tt.want)
		}
	}
}

func TestStatusErr(t *testing.T) {
	if err := StatusOK.Err("connect"); err != nil {
		t.Fatalf("StatusOK.Err = %v, want nil", err)
	}

	tests := []struct {
		status Status
		want   error
	}{
		{StatusNOK, ErrProtocol},
		{StatusUnknownTopic, ErrUnknownTopic},
		{StatusInvalidValue, ErrInvalidValue},
		{StatusConnectivityError, ErrConnectivity},
		{StatusUnknownHandle, ErrUnknownHandle},
		{Status(7), ErrProtocol},
	}
	for _, tt := range tests {
		err := tt.status.Err("sync_write")
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: errors.Is(%v, %v) = false", tt.status, err, tt.want)
		}
		var se *StatusError
		if !errors.As(err, &se) || se.Op != "sync_write" || se.Status != tt.status {
			t.Errorf("%s: unexpected error %#v", tt.status, err)
		}
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
		ok   bool
	}{
		{"INT32", TypeInt32, true},
		{"uint32", TypeUInt32, true},
		{" Int64 ", TypeInt64, true},
		{"UINT64", TypeUInt64, true},
		{"FLOAT32", TypeFloat32, true},
		{"DOUBLE64", TypeDouble64, true},
		{"BOOL", TypeUnknown, false},
		{"", TypeUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseDataType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDataType(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDiscoverInfoClone(t *testing.T) {
	orig := &DiscoverInfo{ReadHandles: []Handle{1, 2}, WriteHandles: []Handle{3}}
	c := orig.Clone()
	c.ReadHandles[0] = 9
	if orig.ReadHandles[0] != 1 {
		t.Error("Clone shares memory with the original")
	}

	var nilInfo *DiscoverInfo
	if nilInfo.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
