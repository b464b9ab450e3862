package asterix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asterix-contrib/asterix-go/result"
)

func testDataset(t *testing.T, parts ...result.AddressPortPair) *Dataset {
	t.Helper()
	c, err := Open("cc.cluster:19002")
	require.NoError(t, err)

	return c.Dataset(result.Locations{
		Handle: result.Handle{JobID: "JID:7", ResultSetID: "RSID:7"},
		Parts:  parts,
	})
}

func TestPartitionsIndexAligned(t *testing.T) {
	d := testDataset(t,
		result.AddressPortPair{Address: "nc-1", Port: 19002},
		result.AddressPortPair{Address: "nc-2", Port: 19002},
		result.AddressPortPair{Address: "nc-3", Port: 19002},
	)

	partitions := d.Partitions()
	require.Len(t, partitions, 3)
	for i, p := range partitions {
		require.Equal(t, i, p.Index)
		require.Equal(t, result.Handle{JobID: "JID:7", ResultSetID: "RSID:7"}, p.Handle)
	}
	require.Equal(t, partitions, d.Partitions())
}

func TestPreferredLocationsHint(t *testing.T) {
	d := testDataset(t, result.AddressPortPair{Address: "nc-9", Port: 19002})
	require.Equal(t, []string{"nc-9"}, d.PreferredLocations(d.Partitions()[0]))
}

func TestRepartitionLeavesOriginalUntouched(t *testing.T) {
	d := testDataset(t,
		result.AddressPortPair{Address: "nc-1", Port: 19002},
		result.AddressPortPair{Address: "nc-2", Port: 19002},
	)
	reshaped := d.Repartition(9)
	require.Equal(t, 5, reshaped.readers) // ceil(9/2)
	require.NotEqual(t, reshaped.readers, d.readers)
	require.Equal(t, d.Partitions(), reshaped.Partitions())
}

func TestRepartitionMinimumOneReader(t *testing.T) {
	d := testDataset(t,
		result.AddressPortPair{Address: "nc-1", Port: 19002},
		result.AddressPortPair{Address: "nc-2", Port: 19002},
	)
	require.Equal(t, 1, d.Repartition(1).readers)
	require.Equal(t, 1, d.Repartition(0).readers)
}
