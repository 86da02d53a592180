package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/geofabric/batch/pkg/structs"
)

const (
	asyncWorkQueue   = "batch:work"
	asyncWorkTask    = "batch:job"
	asyncAggTask     = "aggregated:batch:job"
	asyncAggMaxSize  = 500
	asyncAggMaxDelay = 2 * time.Second
	asyncItemRune    = "\n"
)

// Asynq submits work items over a redis backed queue.
type Asynq struct {
	opts *Options

	ins *asynq.Inspector
	cli *asynq.Client

	// if register is called we're intended to start a server
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server
}

func NewAsynqSubstrate(opts *Options) (*Asynq, error) {
	ins := asynq.NewInspector(asynq.RedisClientOpt{Addr: opts.URL, TLSConfig: opts.TLSConfig})
	cli := asynq.NewClient(asynq.RedisClientOpt{Addr: opts.URL, TLSConfig: opts.TLSConfig})
	return &Asynq{
		opts: opts,
		ins:  ins,
		cli:  cli,
	}, nil
}

func (a *Asynq) Submit(item *structs.WorkItem) (string, error) {
	data, err := marshalItem(item)
	if err != nil {
		return "", err
	}
	qtask := asynq.NewTask(asyncWorkTask, data)
	info, err := a.cli.Enqueue(qtask, asynq.Queue(asyncWorkQueue), asynq.Group(asyncAggTask))
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func (a *Asynq) Register(handler func(items []*structs.WorkItem) error) error {
	if a.mux == nil {
		a.buildServer()
	}
	a.mux.HandleFunc(asyncAggTask, func(ctx context.Context, t *asynq.Task) error {
		items, err := deaggregate(t.Payload())
		if err != nil {
			return err
		}
		return handler(items)
	})
	return nil
}

func (a *Asynq) Run() error {
	if a.srv == nil {
		a.buildServer()
	}
	return a.srv.Run(a.mux)
}

func (a *Asynq) Kill(handle string) error {
	// Best effort cancel; asynq can't guarantee this will kill it
	return a.ins.CancelProcessing(handle)
}

func (a *Asynq) Close() error {
	if a.srv == nil {
		return nil
	}
	a.srv.Stop()
	a.srv.Shutdown()
	return nil
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		// someone locked and set this first
		return
	}
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: a.opts.URL, TLSConfig: a.opts.TLSConfig},
		asynq.Config{
			Queues:          map[string]int{asyncWorkQueue: 1},
			GroupAggregator: asynq.GroupAggregatorFunc(aggregate),
			GroupMaxSize:    asyncAggMaxSize,
			GroupMaxDelay:   asyncAggMaxDelay,
		},
	)
	mux := asynq.NewServeMux()
	a.srv = srv
	a.mux = mux
}

func aggregate(group string, tasks []*asynq.Task) *asynq.Task {
	var b bytes.Buffer
	for _, t := range tasks {
		if t == nil || len(t.Payload()) == 0 {
			continue
		}
		b.Write(t.Payload())
		b.WriteString(asyncItemRune)
	}
	return asynq.NewTask(group, b.Bytes())
}

func marshalItem(item *structs.WorkItem) ([]byte, error) {
	return json.Marshal(item)
}

func deaggregate(payload []byte) ([]*structs.WorkItem, error) {
	items := []*structs.WorkItem{}
	for _, load := range bytes.Split(payload, []byte(asyncItemRune)) {
		load = bytes.TrimSpace(load)
		if len(load) == 0 {
			continue
		}
		item := &structs.WorkItem{}
		if err := json.Unmarshal(load, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
