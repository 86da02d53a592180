package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geofabric/batch/internal/utils"
	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

// Postgres is a batch database implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.SetDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)
	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// InsertRun inserts a new run row.
func (p *Postgres) InsertRun(r *structs.Run) error {
	qstr, args := toRunSqlArgs(1, r)
	qstr = fmt.Sprintf(`INSERT INTO %s (id, live, github, closed, created_at, updated_at) VALUES %s;`, string(structs.KindRun), qstr)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, args...)
	return err
}

// Runs returns runs matching the given query
func (p *Postgres) Runs(q *structs.Query) ([]*structs.Run, error) {
	where, args := toSqlQuery(map[string][]string{
		"id": q.RunIDs,
	}, q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT id, live, github, closed, created_at, updated_at FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		string(structs.KindRun), where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}

	runs := []*structs.Run{}
	for rows.Next() {
		r := structs.Run{}
		var github []byte
		err = rows.Scan(&r.ID, &r.Live, &github, &r.Closed, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		r.GitHub = json.RawMessage(github)
		runs = append(runs, &r)
	}

	return runs, nil
}

// CloseRun sets closed on the given run. It reports whether the run was open.
func (p *Postgres) CloseRun(id string) (bool, error) {
	qstr := fmt.Sprintf(`UPDATE %s SET closed=true, updated_at=$1 WHERE id=$2 AND closed=false;`, string(structs.KindRun))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, timeNow(), id)
	if err != nil {
		return false, err
	}
	return info.RowsAffected() == 1, nil
}

// CloseExpiredRuns closes open runs created before the given unix time.
func (p *Postgres) CloseExpiredRuns(createdBefore int64) (int64, error) {
	qstr := fmt.Sprintf(`UPDATE %s SET closed=true, updated_at=$1 WHERE closed=false AND created_at < $2;`, string(structs.KindRun))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, timeNow(), createdBefore)
	if err != nil {
		return 0, err
	}
	return info.RowsAffected(), nil
}

// AttachJobs inserts job rows against an open run in one transaction.
//
// The run row is locked for the duration so a concurrent close (or a
// concurrent attach racing a close) cannot leave half the rows behind; a
// closed run rejects the whole call with ErrRunClosed before any insert.
func (p *Postgres) AttachJobs(runID string, jobs []*structs.Job) error {
	jstrs, jargs := []string{}, []interface{}{}
	for _, j := range jobs {
		s, a := toJobSqlArgs(len(jargs)+1, j)
		jstrs = append(jstrs, s)
		jargs = append(jargs, a...)
	}
	jstr := strings.Join(jstrs, ",") // join so its (),(),() etc
	jstr = fmt.Sprintf(`INSERT INTO %s (id, run_id, source, source_name, layer, name, status, output, stats, count, bounds, size, version, log_link, substrate_id, message, created_at, updated_at) VALUES %s;`,
		string(structs.KindJob), jstr)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	var closed bool
	err = tx.QueryRow(ctx, fmt.Sprintf(`SELECT closed FROM %s WHERE id=$1 FOR UPDATE;`, string(structs.KindRun)), runID).Scan(&closed)
	if err != nil {
		tx.Rollback(ctx)
		if err == pgx.ErrNoRows {
			return fmt.Errorf("%w run %s", errors.ErrNotFound, runID)
		}
		return err
	}
	if closed {
		tx.Rollback(ctx)
		return fmt.Errorf("%w %s", errors.ErrRunClosed, runID)
	}

	if len(jobs) > 0 {
		_, err = tx.Exec(ctx, jstr, jargs...)
		if err != nil {
			tx.Rollback(ctx)
			return err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		tx.Rollback(ctx)
	}
	return err
}

// Jobs returns jobs matching the given query
func (p *Postgres) Jobs(q *structs.Query) ([]*structs.Job, error) {
	where, args := toSqlQuery(map[string][]string{
		"id":          q.JobIDs,
		"run_id":      q.RunIDs,
		"source_name": q.Sources,
		"status":      statusToStrings(q.Statuses),
	}, q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		jobColumns, string(structs.KindJob), where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}

	jobs := []*structs.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

// SetJobSubstrateID records the substrate handle given to us on submission.
func (p *Postgres) SetJobSubstrateID(jobID, substrateID string) error {
	qstr := fmt.Sprintf(`UPDATE %s SET substrate_id=$1, updated_at=$2 WHERE id=$3;`, string(structs.KindJob))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, substrateID, timeNow(), jobID)
	if err != nil {
		return err
	}
	if info.RowsAffected() == 0 {
		return fmt.Errorf("%w job %s", errors.ErrNotFound, jobID)
	}
	return nil
}

// SetJobStatus applies a status transition and, for promoted successes, the
// result upsert, as one transaction over a locked job row.
func (p *Postgres) SetJobStatus(jobID string, status structs.Status, upd *structs.StatusUpdate, promote bool) (*structs.Job, bool, error) {
	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, false, err
	}

	row := tx.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1 FOR UPDATE;`, jobColumns, string(structs.KindJob)), jobID)
	job, err := scanJob(row)
	if err != nil {
		tx.Rollback(ctx)
		if err == pgx.ErrNoRows {
			return nil, false, fmt.Errorf("%w job %s", errors.ErrNotFound, jobID)
		}
		return nil, false, err
	}

	switch structs.CheckTransition(job.Status, status) {
	case structs.TransitionNoop:
		// duplicate delivery of the same completion report
		tx.Rollback(ctx)
		return job, false, nil
	case structs.TransitionConflict:
		tx.Rollback(ctx)
		return nil, false, fmt.Errorf("%w job %s is %s, reported %s", errors.ErrInvalidTransition, jobID, job.Status, status)
	}

	applyStatusUpdate(job, status, upd)

	output, _ := json.Marshal(job.Output)
	bounds, _ := json.Marshal(job.Bounds)
	qstr := fmt.Sprintf(`UPDATE %s SET status=$1, output=$2, stats=$3, count=$4, bounds=$5, size=$6, version=$7, log_link=$8, message=$9, updated_at=$10 WHERE id=$11;`,
		string(structs.KindJob))
	_, err = tx.Exec(ctx, qstr,
		job.Status, output, []byte(job.Stats), job.Count, bounds, job.Size, job.Version, job.LogLink, job.Message, job.UpdatedAt, job.ID,
	)
	if err != nil {
		tx.Rollback(ctx)
		return nil, false, err
	}

	if promote && status == structs.SUCCESS {
		err = promoteResult(ctx, tx, job)
		if err != nil {
			tx.Rollback(ctx)
			return nil, false, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		tx.Rollback(ctx)
		return nil, false, err
	}
	return job, true, nil
}

// promoteResult upserts the job into its tuple's result row.
//
// The comparison key is the job's submission time (created_at), not its
// completion time, so out-of-order completions converge on the most recently
// submitted job. ON CONFLICT makes the read-modify-write a single statement
// over the locked row; the WHERE clause keeps an older submission from
// clobbering a newer one. Fabric is untouched on replacement.
func promoteResult(ctx context.Context, tx pgx.Tx, job *structs.Job) error {
	qstr := fmt.Sprintf(`INSERT INTO %s (id, source, layer, name, job_id, updated, fabric)
	VALUES ($1, $2, $3, $4, $5, $6, false)
	ON CONFLICT (source, layer, name) DO UPDATE SET job_id=EXCLUDED.job_id, updated=EXCLUDED.updated
	WHERE %s.updated <= EXCLUDED.updated;`,
		string(structs.KindResult), string(structs.KindResult))
	_, err := tx.Exec(ctx, qstr, newResultID(), job.SourceName, job.Layer, job.Name, job.ID, job.CreatedAt)
	return err
}

// Results returns results matching the given query
func (p *Postgres) Results(q *structs.Query) ([]*structs.Result, error) {
	where, args := toSqlQuery(map[string][]string{
		"id":     q.ResultIDs,
		"job_id": q.JobIDs,
		"source": q.Sources,
	}, q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT id, source, layer, name, job_id, updated, fabric FROM %s %s ORDER BY source, layer, name LIMIT $%d OFFSET $%d;`,
		string(structs.KindResult), where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}

	results := []*structs.Result{}
	for rows.Next() {
		r := structs.Result{}
		err = rows.Scan(&r.ID, &r.Source, &r.Layer, &r.Name, &r.JobID, &r.Updated, &r.Fabric)
		if err != nil {
			return nil, err
		}
		results = append(results, &r)
	}

	return results, nil
}

// SetResultFabric toggles the fabric inclusion flag on a result.
func (p *Postgres) SetResultFabric(id string, fabric bool) error {
	qstr := fmt.Sprintf(`UPDATE %s SET fabric=$1 WHERE id=$2;`, string(structs.KindResult))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, fabric, id)
	if err != nil {
		return err
	}
	if info.RowsAffected() == 0 {
		return fmt.Errorf("%w result %s", errors.ErrNotFound, id)
	}
	return nil
}

// InsertCollection inserts a collection definition.
func (p *Postgres) InsertCollection(c *structs.Collection) error {
	qstr, args := toCollectionSqlArgs(1, c)
	qstr = fmt.Sprintf(`INSERT INTO %s (id, name, human, sources, size, created_at, updated_at) VALUES %s;`, string(structs.KindCollection), qstr)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, args...)
	return err
}

// UpdateCollection replaces a collection's label & patterns.
func (p *Postgres) UpdateCollection(c *structs.Collection) error {
	sources, err := json.Marshal(c.Sources)
	if err != nil {
		return err
	}
	qstr := fmt.Sprintf(`UPDATE %s SET human=$1, sources=$2, updated_at=$3 WHERE id=$4;`, string(structs.KindCollection))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, c.Human, sources, timeNow(), c.ID)
	if err != nil {
		return err
	}
	if info.RowsAffected() == 0 {
		return fmt.Errorf("%w collection %s", errors.ErrNotFound, c.ID)
	}
	return nil
}

// Collections returns collections matching the given query
func (p *Postgres) Collections(q *structs.Query) ([]*structs.Collection, error) {
	where, args := toSqlQuery(map[string][]string{
		"id": q.CollectionIDs,
	}, q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT id, name, human, sources, size, created_at, updated_at FROM %s %s ORDER BY name LIMIT $%d OFFSET $%d;`,
		string(structs.KindCollection), where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}

	collections := []*structs.Collection{}
	for rows.Next() {
		c := structs.Collection{}
		var sources []byte
		err = rows.Scan(&c.ID, &c.Name, &c.Human, &sources, &c.Size, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if len(sources) > 0 {
			err = json.Unmarshal(sources, &c.Sources)
			if err != nil {
				return nil, err
			}
		}
		collections = append(collections, &c)
	}

	return collections, nil
}

// SetCollectionSize caches the aggregate byte size on the collection row.
func (p *Postgres) SetCollectionSize(id string, size int64) error {
	qstr := fmt.Sprintf(`UPDATE %s SET size=$1, updated_at=$2 WHERE id=$3;`, string(structs.KindCollection))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, size, timeNow(), id)
	if err != nil {
		return err
	}
	if info.RowsAffected() == 0 {
		return fmt.Errorf("%w collection %s", errors.ErrNotFound, id)
	}
	return nil
}

// InsertJobError appends a ledger row.
func (p *Postgres) InsertJobError(e *structs.JobError) error {
	if e.CreatedAt == 0 {
		e.CreatedAt = timeNow()
	}
	qstr := fmt.Sprintf(`INSERT INTO %s (id, job_id, message, created_at) VALUES ($1, $2, $3, $4);`, string(structs.KindJobError))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr, e.ID, e.JobID, e.Message, e.CreatedAt)
	return err
}

// JobErrors returns ledger rows matching the given query
func (p *Postgres) JobErrors(q *structs.Query) ([]*structs.JobError, error) {
	where, args := toSqlQuery(map[string][]string{
		"job_id": q.JobIDs,
	}, q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT id, job_id, message, created_at FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		string(structs.KindJobError), where, len(args)-1, len(args),
	)

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}

	out := []*structs.JobError{}
	for rows.Next() {
		e := structs.JobError{}
		err = rows.Scan(&e.ID, &e.JobID, &e.Message, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &e)
	}

	return out, nil
}

// DeleteJobErrors removes ledger rows for the given job.
func (p *Postgres) DeleteJobErrors(jobID string) (int64, error) {
	qstr := fmt.Sprintf(`DELETE FROM %s WHERE job_id=$1;`, string(structs.KindJobError))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, jobID)
	if err != nil {
		return 0, err
	}
	return info.RowsAffected(), nil
}

// ClearJobErrors empties the ledger.
func (p *Postgres) ClearJobErrors() error {
	qstr := fmt.Sprintf(`DELETE FROM %s;`, string(structs.KindJobError))

	ctx := context.Background()
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, qstr)
	return err
}

const jobColumns = `id, run_id, source, source_name, layer, name, status, output, stats, count, bounds, size, version, log_link, substrate_id, message, created_at, updated_at`

// scanJob reads one job row, unpacking the JSONB columns.
func scanJob(row pgx.Row) (*structs.Job, error) {
	j := structs.Job{}
	var output, stats, bounds []byte
	err := row.Scan(
		&j.ID,
		&j.RunID,
		&j.Source,
		&j.SourceName,
		&j.Layer,
		&j.Name,
		&j.Status,
		&output,
		&stats,
		&j.Count,
		&bounds,
		&j.Size,
		&j.Version,
		&j.LogLink,
		&j.SubstrateID,
		&j.Message,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(output) > 0 {
		err = json.Unmarshal(output, &j.Output)
		if err != nil {
			return nil, err
		}
	}
	if len(bounds) > 0 {
		err = json.Unmarshal(bounds, &j.Bounds)
		if err != nil {
			return nil, err
		}
	}
	j.Stats = json.RawMessage(stats)
	return &j, nil
}

// applyStatusUpdate folds a completion report into the job in memory.
func applyStatusUpdate(j *structs.Job, status structs.Status, upd *structs.StatusUpdate) {
	j.Status = status
	j.UpdatedAt = timeNow()
	if upd == nil {
		return
	}
	if upd.Output != nil {
		j.Output = upd.Output
	}
	if upd.Stats != nil {
		j.Stats = upd.Stats
	}
	if upd.Count > 0 {
		j.Count = upd.Count
	}
	if upd.Bounds != nil {
		j.Bounds = upd.Bounds
	}
	if upd.Size > 0 {
		j.Size = upd.Size
	}
	if upd.Version != "" {
		j.Version = upd.Version
	}
	if upd.LogLink != "" {
		j.LogLink = upd.LogLink
	}
	if upd.Message != "" {
		j.Message = upd.Message
	}
}

// toSqlQuery converts query data into a SQL query string & args
func toSqlQuery(in map[string][]string, q *structs.Query) (string, []interface{}) {
	if in == nil {
		in = map[string][]string{}
	}
	and := []string{}
	args := []interface{}{}
	for _, k := range sortedKeys(in) {
		v := in[k]
		if v == nil || len(v) == 0 {
			continue
		}
		s, a := toSqlIn(len(args)+1, k, v)
		and = append(and, s)
		args = append(args, a...)
	}
	if q != nil {
		if q.Live != nil {
			args = append(args, *q.Live)
			and = append(and, fmt.Sprintf("live = $%d", len(args)))
		}
		if q.Closed != nil {
			args = append(args, *q.Closed)
			and = append(and, fmt.Sprintf("closed = $%d", len(args)))
		}
		if q.CreatedBefore > 0 {
			args = append(args, q.CreatedBefore)
			and = append(and, fmt.Sprintf("created_at <= $%d", len(args)))
		}
		if q.CreatedAfter > 0 {
			args = append(args, q.CreatedAfter)
			and = append(and, fmt.Sprintf("created_at >= $%d", len(args)))
		}
	}
	if len(and) == 0 {
		return "", args
	}
	return fmt.Sprintf("WHERE %s", strings.Join(and, " AND ")), args
}

// sortedKeys keeps generated SQL deterministic for tests & prepared statements
func sortedKeys(in map[string][]string) []string {
	keys := []string{}
	for k := range in {
		keys = append(keys, k)
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] < keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	return keys
}

// toSqlIn converts a list of strings into a SQL IN clause
func toSqlIn(offset int, field string, args []string) (string, []interface{}) {
	if len(args) == 0 {
		return "", []interface{}{}
	}
	vals := []string{}
	ifargs := []interface{}{}
	for i, a := range args {
		vals = append(vals, fmt.Sprintf("$%d", i+offset))
		ifargs = append(ifargs, a)
	}
	return fmt.Sprintf("%s IN (%s)", field, strings.Join(vals, ", ")), ifargs
}

// toRunSqlArgs converts a run into a SQL query string & args (for an insert)
func toRunSqlArgs(offset int, r *structs.Run) (string, []interface{}) {
	vals := []string{}
	for i := offset; i < 6+offset; i++ {
		vals = append(vals, fmt.Sprintf("$%d", i))
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = timeNow()
		r.UpdatedAt = r.CreatedAt
	}
	return fmt.Sprintf("(%s)", strings.Join(vals, ", ")), []interface{}{
		r.ID,
		r.Live,
		[]byte(r.GitHub),
		r.Closed,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// toJobSqlArgs converts a job into a SQL query string & args (for an insert)
func toJobSqlArgs(offset int, j *structs.Job) (string, []interface{}) {
	vals := []string{}
	for i := offset; i < 18+offset; i++ {
		vals = append(vals, fmt.Sprintf("$%d", i))
	}
	if j.CreatedAt == 0 {
		j.CreatedAt = timeNow()
		j.UpdatedAt = j.CreatedAt
	}
	output, _ := json.Marshal(j.Output)
	bounds, _ := json.Marshal(j.Bounds)
	return fmt.Sprintf("(%s)", strings.Join(vals, ", ")), []interface{}{
		j.ID,
		j.RunID,
		j.Source,
		j.SourceName,
		j.Layer,
		j.Name,
		j.Status,
		output,
		[]byte(j.Stats),
		j.Count,
		bounds,
		j.Size,
		j.Version,
		j.LogLink,
		j.SubstrateID,
		j.Message,
		j.CreatedAt,
		j.UpdatedAt,
	}
}

// toCollectionSqlArgs converts a collection into a SQL query string & args (for an insert)
func toCollectionSqlArgs(offset int, c *structs.Collection) (string, []interface{}) {
	vals := []string{}
	for i := offset; i < 7+offset; i++ {
		vals = append(vals, fmt.Sprintf("$%d", i))
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = timeNow()
		c.UpdatedAt = c.CreatedAt
	}
	sources, _ := json.Marshal(c.Sources)
	return fmt.Sprintf("(%s)", strings.Join(vals, ", ")), []interface{}{
		c.ID,
		c.Name,
		c.Human,
		sources,
		c.Size,
		c.CreatedAt,
		c.UpdatedAt,
	}
}

// statusToStrings converts a list of statuses into a list of strings
func statusToStrings(in []structs.Status) []string {
	if in == nil || len(in) == 0 {
		return nil
	}
	out := []string{}
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

// timeNow returns the current time in unix seconds
func timeNow() int64 {
	return time.Now().Unix()
}

// newResultID is replaceable for tests
var newResultID = utils.NewRandomID
