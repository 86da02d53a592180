package database

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/structs"
)

// TestQueriedColumnsExistInMigration checks the column lists the query layer
// uses against the CREATE TABLE blocks in the embedded migration, since a
// name drifting on either side only surfaces at runtime.
func TestQueriedColumnsExistInMigration(t *testing.T) {
	cases := []struct {
		Name    string
		Table   structs.Kind
		Columns string
	}{
		{Name: "Run", Table: structs.KindRun, Columns: "id, live, github, closed, created_at, updated_at"},
		{Name: "Job", Table: structs.KindJob, Columns: jobColumns},
		{Name: "Result", Table: structs.KindResult, Columns: "id, source, layer, name, job_id, updated, fabric"},
		{Name: "Collection", Table: structs.KindCollection, Columns: "id, name, human, sources, size, created_at, updated_at"},
		{Name: "JobError", Table: structs.KindJobError, Columns: "id, job_id, message, created_at"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			created := migrationColumns(t, string(c.Table))
			for _, col := range strings.Split(c.Columns, ",") {
				col = strings.TrimSpace(col)
				assert.True(t, created[col], "code queries %s column %q but migration does not create it", c.Table, col)
			}
		})
	}
}

// migrationColumns extracts the column names a CREATE TABLE block declares.
func migrationColumns(t *testing.T, table string) map[string]bool {
	data, err := migrationFiles.ReadFile("migrations/0001_init.up.sql")
	if err != nil {
		t.Fatal(err)
	}

	re := regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\n\);`)
	m := re.FindStringSubmatch(string(data))
	if len(m) != 2 {
		t.Fatalf("no CREATE TABLE block for %s", table)
	}

	cols := map[string]bool{}
	for _, line := range strings.Split(m[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		first := strings.ToLower(fields[0])
		if first == "unique" || first == "primary" || first == "foreign" {
			continue
		}
		cols[first] = true
	}
	return cols
}
