package labels

import "testing"

func TestGroupType(t *testing.T) {
	t.Parallel()

	if got := GroupType(nil); got != "" {
		t.Fatalf("nil code: got %q, want empty", got)
	}
	one := 1
	if got := GroupType(&one); got != "Adhoc" {
		t.Fatalf("code 1: got %q", got)
	}
	unknown := 99
	if got := GroupType(&unknown); got != "" {
		t.Fatalf("unknown code: got %q, want empty", got)
	}
}

func TestDeviceType_FallsBackToCatchAll(t *testing.T) {
	t.Parallel()

	if got := DeviceType(2); got != "Mobile" {
		t.Fatalf("code 2: got %q", got)
	}
	if got := DeviceType(0); got != "All Devices" {
		t.Fatalf("unknown code: got %q, want catch-all", got)
	}
	if got := DeviceType(42); got != "All Devices" {
		t.Fatalf("unknown code: got %q, want catch-all", got)
	}
}
