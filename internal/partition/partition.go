// Package partition maps a query's result locations onto independent
// units of parallel work.
package partition

import (
	"github.com/asterix-contrib/asterix-go/result"
)

// Map enumerates locations into one descriptor per endpoint, index-aligned
// with the input sequence. Pure function: no network or state access.
func Map(locations result.Locations) []result.Partition {
	descriptors := make([]result.Partition, len(locations.Parts))
	for i, location := range locations.Parts {
		descriptors[i] = result.Partition{
			Index:    i,
			Handle:   locations.Handle,
			Location: location,
		}
	}

	return descriptors
}

// PreferredLocations is a scheduling hint: running the task near the
// partition's endpoint is an optimization, never a correctness requirement.
func PreferredLocations(d result.Partition) []string {
	return []string{d.Location.Address}
}

// ReaderCount maps a repartition target onto the reader-count hint passed
// to each frame endpoint: ceil(targetCount / partitions), at least 1.
func ReaderCount(targetCount, partitions int) int {
	if targetCount <= 0 || partitions <= 0 {
		return 1
	}
	readers := (targetCount + partitions - 1) / partitions
	if readers < 1 {
		return 1
	}

	return readers
}
