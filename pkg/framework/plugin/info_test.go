package plugin

import "testing"

func TestUIDStable(t *testing.T) {
	info := Info{ID: "com.volfym.sillydelay", UniqueID: 486893}

	a := info.UID()
	b := info.UID()
	if a != b {
		t.Error("UID() not deterministic")
	}

	var zero [16]byte
	if a == zero {
		t.Error("UID() is all zeros")
	}
}

func TestUIDDistinguishes(t *testing.T) {
	a := Info{ID: "com.volfym.sillydelay", UniqueID: 486893}.UID()
	b := Info{ID: "com.volfym.sillydelay", UniqueID: 486894}.UID()
	c := Info{ID: "com.volfym.other", UniqueID: 486893}.UID()

	if a == b {
		t.Error("UID identical across different unique IDs")
	}
	if a == c {
		t.Error("UID identical across different string IDs")
	}
}
