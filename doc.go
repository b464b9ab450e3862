/*
Package asterix streams the result set of a remote, asynchronously executed
query into a consuming distributed computation, one partition per remote
result location, overlapping network I/O with consumption through
prefetching.

	connector, err := asterix.Open("cc.cluster:19002")
	if err != nil {
		// handle error
	}
	defer connector.Close()

	dataset, err := connector.Execute(ctx, "select * from tweets")
	if err != nil {
		// handle error
	}
	for _, part := range dataset.Partitions() {
		records, err := dataset.Compute(ctx, part)
		if err != nil {
			// handle error
		}
		for records.HasNext() {
			record, err := records.Next()
			// ...
		}
		_ = records.Close()
	}

Each partition's records arrive in frame-arrival order; no ordering across
partitions is implied. A host framework re-running a failed task calls
Compute again: every call opens a fresh frame source and reader, and no
partial partition state survives a failed attempt.
*/
package asterix
