package httpapi

import (
	"fmt"
	"strconv"
)

// parsePathID validates a path identifier before it reaches the domain layer.
// Non-numeric and negative values are rejected here with a 400-class error.
func parsePathID(raw, name string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q must be an unsigned integer", name, raw)
	}
	return uint32(id), nil
}
