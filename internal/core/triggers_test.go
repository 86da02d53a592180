package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/geofabric/batch/internal/mocks/pkg/compute_mock"
	"github.com/geofabric/batch/internal/mocks/pkg/database_mock"
	"github.com/geofabric/batch/internal/mocks/pkg/sources_mock"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

func TestTriggerUnknownKind(t *testing.T) {
	svc := &Service{opts: &Options{}, log: zerolog.Nop()}

	err := svc.RunScheduleTrigger("defragment")

	assert.ErrorIs(t, err, errors.ErrBadTrigger)
	assert.True(t, errors.IsValidation(err))
}

func TestTriggerNoopKinds(t *testing.T) {
	svc := &Service{opts: &Options{}, log: zerolog.Nop()}

	assert.Nil(t, svc.RunScheduleTrigger("level"))
	assert.Nil(t, svc.RunScheduleTrigger("scale"))
}

func TestTriggerSourcesClearsLedgerFirst(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	sub := compute_mock.NewMockSubstrate(gomock.NewController(t))
	fetch := sources_mock.NewMockFetcher(gomock.NewController(t))
	svc := &Service{
		db: db, sub: sub, fetch: fetch,
		opts: &Options{Catalog: []string{"https://data.example.com/us.tar.gz"}},
		log:  zerolog.Nop(),
	}

	cleared := false
	db.EXPECT().ClearJobErrors().DoAndReturn(func() error {
		cleared = true
		return nil
	})
	db.EXPECT().InsertRun(gomock.Any()).DoAndReturn(func(r *structs.Run) error {
		// the ledger must already be empty when the new generation starts
		assert.True(t, cleared)
		assert.True(t, r.Live)
		return nil
	})
	db.EXPECT().Runs(gomock.Any()).DoAndReturn(func(q *structs.Query) ([]*structs.Run, error) {
		return []*structs.Run{{ID: q.RunIDs[0], Live: true}}, nil
	})
	fetch.EXPECT().Manifest("https://data.example.com/us.tar.gz").Return(&structs.SourceManifest{
		Schema: 2,
		Layers: map[string][]structs.ManifestEntry{"roads": {{Name: "ca"}}},
	}, nil)
	db.EXPECT().AttachJobs(gomock.Any(), gomock.Any()).Return(nil)
	sub.EXPECT().Submit(gomock.Any()).Return("h", nil)
	db.EXPECT().SetJobSubstrateID(gomock.Any(), "h").Return(nil)
	db.EXPECT().CloseRun(gomock.Any()).Return(true, nil)

	err := svc.RunScheduleTrigger("sources")

	assert.Nil(t, err)
}

func TestTriggerSourcesNoCatalog(t *testing.T) {
	svc := &Service{opts: &Options{}, log: zerolog.Nop()}

	err := svc.RunScheduleTrigger("sources")

	assert.ErrorIs(t, err, errors.ErrNoEntries)
}

func TestTriggerClose(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, opts: &Options{MaxRunAge: time.Hour}, log: zerolog.Nop()}

	before := time.Now().Add(-time.Hour).Unix()
	db.EXPECT().CloseExpiredRuns(gomock.Any()).DoAndReturn(func(cutoff int64) (int64, error) {
		assert.GreaterOrEqual(t, cutoff, before)
		assert.LessOrEqual(t, cutoff, time.Now().Add(-time.Hour).Unix())
		return int64(3), nil
	})

	err := svc.RunScheduleTrigger("close")

	assert.Nil(t, err)
}

func TestTriggerCollect(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, opts: &Options{}, log: zerolog.Nop()}
	colID := "33333333-3333-3333-3333-333333333333"

	// page of all collections, then the per-collection resolve lookup
	db.EXPECT().Collections(gomock.Any()).Return([]*structs.Collection{{
		ID: colID, Name: "x", Sources: []string{"us/ca/*"},
	}}, nil)
	db.EXPECT().Collections(gomock.Any()).Return([]*structs.Collection{{
		ID: colID, Name: "x", Sources: []string{"us/ca/*"},
	}}, nil)
	db.EXPECT().Results(gomock.Any()).Return([]*structs.Result{}, nil)
	db.EXPECT().SetCollectionSize(colID, int64(0)).Return(nil)

	err := svc.RunScheduleTrigger("collect")

	assert.Nil(t, err)
}
