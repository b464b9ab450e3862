package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	record := Record(0)
	require.Contains(t, record, "stack.TestRecord")
	require.Contains(t, record, "record_test.go:")
}

func TestRecordNested(t *testing.T) {
	var record string
	func() {
		record = Record(1)
	}()
	require.Contains(t, record, "stack.TestRecordNested")
}
