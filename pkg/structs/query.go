package structs

const (
	queryLimitDefault = 1000
	queryLimitMax     = 10000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	RunIDs        []string `json:"run_ids,omitempty"`
	JobIDs        []string `json:"job_ids,omitempty"`
	ResultIDs     []string `json:"result_ids,omitempty"`
	CollectionIDs []string `json:"collection_ids,omitempty"`
	Sources       []string `json:"sources,omitempty"`
	Statuses      []Status `json:"statuses,omitempty"`

	// Live filters runs on their live flag, when set
	Live *bool `json:"live,omitempty"`

	// Closed filters runs on their closed flag, when set
	Closed *bool `json:"closed,omitempty"`

	// CreatedBefore / CreatedAfter bound CreatedAt, unix seconds, when > 0
	CreatedBefore int64 `json:"created_before,omitempty"`
	CreatedAfter  int64 `json:"created_after,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.RunIDs != nil && len(q.RunIDs) == 0 {
		q.RunIDs = nil
	}
	if q.JobIDs != nil && len(q.JobIDs) == 0 {
		q.JobIDs = nil
	}
	if q.ResultIDs != nil && len(q.ResultIDs) == 0 {
		q.ResultIDs = nil
	}
	if q.CollectionIDs != nil && len(q.CollectionIDs) == 0 {
		q.CollectionIDs = nil
	}
	if q.Sources != nil && len(q.Sources) == 0 {
		q.Sources = nil
	}
	if q.Statuses != nil && len(q.Statuses) == 0 {
		q.Statuses = nil
	}
}
