package compute

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/structs"
)

func TestAggregate(t *testing.T) {
	group := "group"

	cases := []struct {
		Name   string
		Given  [][]byte
		Expect []byte
	}{
		{
			"SingleItem",
			[][]byte{[]byte(`{"job_id":"1"}`)},
			[]byte(`{"job_id":"1"}` + asyncItemRune),
		},
		{
			"MultipleItems",
			[][]byte{[]byte(`{"job_id":"1"}`), []byte(`{"job_id":"2"}`)},
			[]byte(`{"job_id":"1"}` + asyncItemRune + `{"job_id":"2"}` + asyncItemRune),
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			in := []*asynq.Task{}
			for _, b := range c.Given {
				in = append(in, asynq.NewTask(group, b))
			}

			result := aggregate(group, in)

			assert.Equal(t, c.Expect, result.Payload())
		})
	}
}

func TestDeaggregate(t *testing.T) {
	given := []byte(`{"job_id":"1","layer":"roads"}` + asyncItemRune + `{"job_id":"2","layer":"water"}` + asyncItemRune)

	result, err := deaggregate(given)

	assert.Nil(t, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, "1", result[0].JobID)
	assert.Equal(t, "roads", result[0].Layer)
	assert.Equal(t, "2", result[1].JobID)
	assert.Equal(t, "water", result[1].Layer)
}

func TestDeaggregateSkipsEmpty(t *testing.T) {
	given := []byte(asyncItemRune + asyncItemRune + `{"job_id":"1"}` + asyncItemRune)

	result, err := deaggregate(given)

	assert.Nil(t, err)
	assert.Equal(t, 1, len(result))
	assert.Equal(t, "1", result[0].JobID)
}

func TestDeaggregateRoundTrip(t *testing.T) {
	items := []*structs.WorkItem{
		{JobID: "a", RunID: "r", Source: "https://example.com/us.tar", SourceName: "us", Layer: "roads", Name: "ca"},
		{JobID: "b", RunID: "r", Source: "https://example.com/ca.tar", SourceName: "ca", Layer: "water", Name: "bc"},
	}

	tasks := []*asynq.Task{}
	for _, i := range items {
		data, err := marshalItem(i)
		assert.Nil(t, err)
		tasks = append(tasks, asynq.NewTask(asyncWorkTask, data))
	}

	agg := aggregate(asyncAggTask, tasks)
	result, err := deaggregate(agg.Payload())

	assert.Nil(t, err)
	assert.Equal(t, items, result)
}
