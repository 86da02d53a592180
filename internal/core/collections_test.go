package core

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/geofabric/batch/internal/mocks/pkg/database_mock"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

func TestCreateCollection(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, log: zerolog.Nop()}

	db.EXPECT().InsertCollection(gomock.Any()).DoAndReturn(func(c *structs.Collection) error {
		assert.Equal(t, "western-us", c.Name)
		assert.Equal(t, []string{"us/ca/*", "us/wa/*"}, c.Sources)
		return nil
	})

	col, err := svc.CreateCollection(&structs.CreateCollectionRequest{
		Name:    "western-us",
		Human:   "Western US",
		Sources: []string{"us/ca/*", "us/wa/*"},
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, col.ID)
}

func TestCreateCollectionValidation(t *testing.T) {
	svc := &Service{log: zerolog.Nop()}

	cases := []struct {
		Name   string
		In     *structs.CreateCollectionRequest
		Expect error
	}{
		{"NoName", &structs.CreateCollectionRequest{Sources: []string{"a/b/c"}}, errors.ErrInvalidArg},
		{"NoPatterns", &structs.CreateCollectionRequest{Name: "x"}, errors.ErrNoEntries},
		{"EmptyPattern", &structs.CreateCollectionRequest{Name: "x", Sources: []string{""}}, errors.ErrInvalidArg},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			_, err := svc.CreateCollection(c.In)

			assert.ErrorIs(t, err, c.Expect)
		})
	}
}

func TestResolveMembership(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, log: zerolog.Nop()}
	colID := "33333333-3333-3333-3333-333333333333"

	db.EXPECT().Collections(gomock.Any()).Return([]*structs.Collection{{
		ID:      colID,
		Name:    "western-us",
		Sources: []string{"us/ca/*", "us/wa/*"},
	}}, nil)
	db.EXPECT().Results(gomock.Any()).Return([]*structs.Result{
		{ID: "r1", Source: "us", Layer: "ca", Name: "oak", JobID: "j1"},
		{ID: "r2", Source: "us", Layer: "wa", Name: "king", JobID: "j2"},
		{ID: "r3", Source: "us", Layer: "or", Name: "multnomah", JobID: "j3"},
	}, nil)
	db.EXPECT().Jobs(gomock.Any()).DoAndReturn(func(q *structs.Query) ([]*structs.Job, error) {
		assert.ElementsMatch(t, []string{"j1", "j2"}, q.JobIDs)
		return []*structs.Job{
			{ID: "j1", Size: 100, Output: map[string]string{structs.OutputRaw: "jobs/j1/raw"}},
			{ID: "j2", Size: 50},
		}, nil
	})
	db.EXPECT().SetCollectionSize(colID, int64(150)).Return(nil)

	man, err := svc.ResolveMembership(colID)

	assert.Nil(t, err)
	assert.Equal(t, colID, man.CollectionID)
	assert.Equal(t, int64(150), man.Size)
	assert.Equal(t, 2, len(man.Items))
	assert.Equal(t, "us/ca/oak", man.Items[0].Path)
	assert.Equal(t, "us/wa/king", man.Items[1].Path)
}

func TestResolveMembershipPatternOrderIrrelevant(t *testing.T) {
	results := []*structs.Result{
		{ID: "r1", Source: "us", Layer: "ca", Name: "oak", JobID: "j1"},
		{ID: "r2", Source: "us", Layer: "wa", Name: "king", JobID: "j2"},
		{ID: "r3", Source: "us", Layer: "or", Name: "multnomah", JobID: "j3"},
	}

	for _, patterns := range [][]string{
		{"us/ca/*", "us/wa/*"},
		{"us/wa/*", "us/ca/*"},
	} {
		db := database_mock.NewMockDatabase(gomock.NewController(t))
		svc := &Service{db: db, log: zerolog.Nop()}

		db.EXPECT().Results(gomock.Any()).Return(results, nil)

		matched, err := svc.matchResults(patterns)

		assert.Nil(t, err)
		assert.Equal(t, 2, len(matched))
		assert.Equal(t, "us/ca/oak", matched[0].Path())
		assert.Equal(t, "us/wa/king", matched[1].Path())
	}
}

func TestResolveMembershipUnknownCollection(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, log: zerolog.Nop()}

	db.EXPECT().Collections(gomock.Any()).Return([]*structs.Collection{}, nil)

	_, err := svc.ResolveMembership("33333333-3333-3333-3333-333333333333")

	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestSetResultFabric(t *testing.T) {
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := &Service{db: db, log: zerolog.Nop()}
	id := "44444444-4444-4444-4444-444444444444"

	db.EXPECT().SetResultFabric(id, true).Return(nil)

	err := svc.SetResultFabric(id, true)

	assert.Nil(t, err)
}
