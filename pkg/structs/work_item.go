package structs

// WorkItem is the unit of work submitted to the compute substrate; one per
// (source, layer, name) tuple. The substrate executes it asynchronously and
// reports completion via the status API, it never calls back in-process.
type WorkItem struct {
	JobID      string `json:"job_id"`
	RunID      string `json:"run_id"`
	Source     string `json:"source"`
	SourceName string `json:"source_name"`
	Layer      string `json:"layer"`
	Name       string `json:"name"`
}
