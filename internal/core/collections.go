package core

import (
	"fmt"
	"sort"

	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

func (c *Service) Collections(q *structs.Query) ([]*structs.Collection, error) {
	q.Sanitize()
	return c.db.Collections(q)
}

func (c *Service) CreateCollection(req *structs.CreateCollectionRequest) (*structs.Collection, error) {
	err := validateCollection(req)
	if err != nil {
		return nil, err
	}
	col := &structs.Collection{
		ID:      utils.NewRandomID(),
		Name:    req.Name,
		Human:   req.Human,
		Sources: req.Sources,
	}
	return col, c.db.InsertCollection(col)
}

func (c *Service) UpdateCollection(id string, req *structs.CreateCollectionRequest) (*structs.Collection, error) {
	err := validateCollection(req)
	if err != nil {
		return nil, err
	}
	col, err := c.collection(id)
	if err != nil {
		return nil, err
	}
	col.Human = req.Human
	col.Sources = req.Sources
	return col, c.db.UpdateCollection(col)
}

// ResolveMembership computes which results a collection currently selects
// and emits the manifest the archive builder consumes. Membership is a union
// over the collection's patterns, deduplicated by result, so pattern order
// never changes the outcome. The aggregate size is cached on the collection
// row as a side effect.
func (c *Service) ResolveMembership(collectionID string) (*structs.CollectionManifest, error) {
	col, err := c.collection(collectionID)
	if err != nil {
		return nil, err
	}

	matched, err := c.matchResults(col.Sources)
	if err != nil {
		return nil, err
	}

	// batch fetch the jobs backing each matched result for artifact locators
	jobIDs := []string{}
	for _, r := range matched {
		jobIDs = append(jobIDs, r.JobID)
	}
	jobByID := map[string]*structs.Job{}
	for i := 0; i < len(jobIDs); i += queryPageSize {
		end := i + queryPageSize
		if end > len(jobIDs) {
			end = len(jobIDs)
		}
		jobs, err := c.db.Jobs(&structs.Query{Limit: queryPageSize, JobIDs: jobIDs[i:end]})
		if err != nil {
			return nil, err
		}
		for _, j := range jobs {
			jobByID[j.ID] = j
		}
	}

	man := &structs.CollectionManifest{CollectionID: col.ID, Items: []*structs.CollectionItem{}}
	for _, r := range matched {
		job, ok := jobByID[r.JobID]
		if !ok {
			return nil, fmt.Errorf("%w: job %s backing result %s", errors.ErrNotFound, r.JobID, r.ID)
		}
		man.Items = append(man.Items, &structs.CollectionItem{
			ResultID: r.ID,
			JobID:    job.ID,
			Path:     r.Path(),
			Output:   job.Output,
			Size:     job.Size,
		})
		man.Size += job.Size
	}

	err = c.db.SetCollectionSize(col.ID, man.Size)
	if err != nil {
		return nil, err
	}
	c.log.Info().Str("collection", col.ID).Int("items", len(man.Items)).Int64("size", man.Size).Msg("resolved collection membership")
	return man, nil
}

// matchResults pages over all results and returns those whose path matches
// any pattern, deduplicated by result id, in stable path order.
func (c *Service) matchResults(patterns []string) ([]*structs.Result, error) {
	seen := map[string]*structs.Result{}
	q := &structs.Query{Limit: queryPageSize, Offset: 0}
	for {
		results, err := c.db.Results(q)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			if matchAny(patterns, r.Path()) {
				seen[r.ID] = r
			}
		}
		if len(results) < q.Limit {
			break
		}
		q.Offset += q.Limit
	}

	matched := []*structs.Result{}
	for _, r := range seen {
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Path() < matched[j].Path() })
	return matched, nil
}

// SetResultFabric toggles a result's inclusion in the derived tiled dataset.
func (c *Service) SetResultFabric(id string, fabric bool) error {
	if !utils.IsValidID(id) {
		return fmt.Errorf("%w: %s is not a valid result id", errors.ErrInvalidArg, id)
	}
	return c.db.SetResultFabric(id, fabric)
}

func (c *Service) collection(id string) (*structs.Collection, error) {
	cols, err := c.db.Collections(&structs.Query{Limit: 1, CollectionIDs: []string{id}})
	if err != nil {
		return nil, err
	}
	if len(cols) != 1 {
		return nil, fmt.Errorf("%w: collection %s", errors.ErrNotFound, id)
	}
	return cols[0], nil
}

func validateCollection(req *structs.CreateCollectionRequest) error {
	if req.Name == "" || len(req.Name) > maxNameLength {
		return fmt.Errorf("%w: collection name required, max %d chars", errors.ErrInvalidArg, maxNameLength)
	}
	if len(req.Sources) == 0 {
		return errors.ErrNoEntries
	}
	if len(req.Sources) > maxEntries {
		return fmt.Errorf("%w: %d patterns above max %d", errors.ErrMaxExceeded, len(req.Sources), maxEntries)
	}
	for _, p := range req.Sources {
		if p == "" {
			return fmt.Errorf("%w: empty pattern", errors.ErrInvalidArg)
		}
	}
	return nil
}
