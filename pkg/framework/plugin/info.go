// Package plugin holds plugin metadata reported to the host.
package plugin

import "hash/fnv"

// Info contains plugin metadata
type Info struct {
	ID       string // Reverse-domain identifier (e.g., "com.volfym.sillydelay")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx|Delay")

	// UniqueID is the numeric identifier registered with the host.
	// Must never change between releases or hosts lose automation.
	UniqueID int32
}

// UID derives a stable 16-byte class identifier from the string ID and
// the numeric unique ID.
func (i Info) UID() [16]byte {
	h := fnv.New128a()
	h.Write([]byte(i.ID))
	h.Write([]byte{
		byte(i.UniqueID >> 24),
		byte(i.UniqueID >> 16),
		byte(i.UniqueID >> 8),
		byte(i.UniqueID),
	})

	var uid [16]byte
	copy(uid[:], h.Sum(nil))
	return uid
}
