package cycle

import (
	"testing"

	"envlogger-go/types"
)

func TestConnectSucceedsMidPoll(t *testing.T) {
	r := &fakeRadio{statuses: []types.WirelessStatus{
		types.WirelessIdle,
		types.WirelessDisconnected,
		types.WirelessConnected,
	}}
	c := NewConnectivity(r, fastConnect(), nil)

	if res := c.Run(); res != ResConnected {
		t.Fatalf("result = %v, want connected", res)
	}
	if !r.began || r.ssid != "AX72-IoT" {
		t.Fatalf("association not started properly: %+v", r)
	}
	if r.downCalls != 0 {
		t.Fatal("stage must not tear the radio down")
	}
}

func TestConnectTimeoutClassifiesLastStatus(t *testing.T) {
	cases := []struct {
		status types.WirelessStatus
		want   Result
	}{
		{types.WirelessNoAPFound, ResNoAccessPoint},
		{types.WirelessConnectFailed, ResAuthFailed},
		{types.WirelessWrongPassword, ResAuthFailed},
		{types.WirelessDisconnected, ResGenericFailure},
		{types.WirelessIdle, ResGenericFailure},
	}
	for _, tc := range cases {
		r := &fakeRadio{statuses: []types.WirelessStatus{tc.status}}
		c := NewConnectivity(r, fastConnect(), nil)
		if res := c.Run(); res != tc.want {
			t.Errorf("status %v: result = %v, want %v", tc.status, res, tc.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every representable status code maps somewhere; codes the
	// mapping does not name are generic failures.
	for s := 0; s < 256; s++ {
		res := Classify(types.WirelessStatus(s))
		switch res {
		case ResConnected, ResAuthFailed, ResNoAccessPoint, ResGenericFailure:
		default:
			t.Fatalf("status %d mapped to unknown result %v", s, res)
		}
	}
	if Classify(types.WirelessStatus(250)) != ResGenericFailure {
		t.Fatal("unknown status must map to generic failure")
	}
}
