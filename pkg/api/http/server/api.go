// Package server serves the coordinator API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/geofabric/batch/pkg/api"
	"github.com/geofabric/batch/pkg/api/http/common"
	"github.com/geofabric/batch/pkg/structs"
)

const (
	wait = 30 * time.Second
)

type Server struct {
	addr       string
	debug      bool
	svc        api.API
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr string, debug bool) *Server {
	return &Server{
		addr:  addr,
		debug: debug,
		exit:  make(chan os.Signal, 1),
	}
}

func (s *Server) ServeForever(svc api.API) error {
	s.svc = svc

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)

	router.HandleFunc(common.API_RUNS, s.Runs).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(common.API_RUNS+"/{id}/close", s.CloseRun).Methods(http.MethodPatch)
	router.HandleFunc(common.API_RUNS+"/{id}/jobs", s.AttachJobs).Methods(http.MethodPost)

	router.HandleFunc(common.API_JOBS, s.Jobs).Methods(http.MethodGet)
	router.HandleFunc(common.API_JOBS+"/{id}/status", s.UpdateJobStatus).Methods(http.MethodPatch)
	router.HandleFunc(common.API_JOBS+"/{id}/rerun", s.Rerun).Methods(http.MethodPost)
	router.HandleFunc(common.API_JOBS+"/{id}/log", s.JobLog).Methods(http.MethodGet)
	router.HandleFunc(common.API_JOBS+"/{id}/artifacts", s.JobArtifacts).Methods(http.MethodGet)

	router.HandleFunc(common.API_RESULTS, s.Results).Methods(http.MethodGet)
	router.HandleFunc(common.API_RESULTS+"/{id}/fabric", s.SetResultFabric).Methods(http.MethodPatch)

	router.HandleFunc(common.API_COLLECTIONS, s.Collections).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(common.API_COLLECTIONS+"/{id}", s.UpdateCollection).Methods(http.MethodPut)
	router.HandleFunc(common.API_COLLECTIONS+"/{id}/manifest", s.ResolveMembership).Methods(http.MethodGet)

	router.HandleFunc(common.API_JOB_ERRORS, s.JobErrors).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(common.API_JOB_ERRORS+"/{job_id}", s.ResolveJobError).Methods(http.MethodDelete)

	router.HandleFunc(common.API_TRIGGERS+"/{kind}", s.RunScheduleTrigger).Methods(http.MethodPost)

	if s.debug {
		log.Info().Msg("debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}

	s.httpserver = &http.Server{
		Handler:      router,
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", s.httpserver.Addr).Msg("listening")
		if err := s.httpserver.ListenAndServe(); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	defer s.Close()
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) Runs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getRuns(w, r)
	case http.MethodPost:
		s.createRun(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	req := &structs.CreateRunRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	resp, err := s.svc.CreateRun(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, resp)
}

func (s *Server) getRuns(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Runs(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, items)
}

func (s *Server) CloseRun(w http.ResponseWriter, r *http.Request) {
	err := s.svc.CloseRun(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, &common.UpdateResponse{Updated: 1})
}

func (s *Server) AttachJobs(w http.ResponseWriter, r *http.Request) {
	req := &structs.AttachJobsRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}
	req.RunID = mux.Vars(r)["id"]

	report, err := s.svc.AttachJobs(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, report)
}

func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Jobs(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, items)
}

func (s *Server) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	req := &structs.UpdateJobStatusRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}
	req.JobID = mux.Vars(r)["id"]

	job, err := s.svc.UpdateJobStatus(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, job)
}

func (s *Server) Rerun(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.Rerun(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, resp)
}

func (s *Server) JobLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data, err := s.svc.JobLog(id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, &common.LogResponse{JobID: id, Log: data})
}

func (s *Server) JobArtifacts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	arts, err := s.svc.JobArtifacts(id)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, &common.ArtifactsResponse{JobID: id, Artifacts: arts})
}

func (s *Server) Results(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Results(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, items)
}

func (s *Server) SetResultFabric(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Fabric bool `json:"fabric"`
	}{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	err = s.svc.SetResultFabric(mux.Vars(r)["id"], req.Fabric)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, &common.UpdateResponse{Updated: 1})
}

func (s *Server) Collections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getCollections(w, r)
	case http.MethodPost:
		s.createCollection(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) getCollections(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Collections(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, items)
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	req := &structs.CreateCollectionRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	col, err := s.svc.CreateCollection(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, col)
}

func (s *Server) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	req := &structs.CreateCollectionRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	col, err := s.svc.UpdateCollection(mux.Vars(r)["id"], req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, col)
}

func (s *Server) ResolveMembership(w http.ResponseWriter, r *http.Request) {
	man, err := s.svc.ResolveMembership(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, man)
}

func (s *Server) JobErrors(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getJobErrors(w, r)
	case http.MethodPost:
		s.createJobError(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) getJobErrors(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.JobErrors(q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, items)
}

func (s *Server) createJobError(w http.ResponseWriter, r *http.Request) {
	req := &structs.CreateJobErrorRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	e, err := s.svc.CreateJobError(req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, e)
}

func (s *Server) ResolveJobError(w http.ResponseWriter, r *http.Request) {
	count, err := s.svc.ResolveJobError(mux.Vars(r)["job_id"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, &common.UpdateResponse{Updated: count})
}

func (s *Server) RunScheduleTrigger(w http.ResponseWriter, r *http.Request) {
	err := s.svc.RunScheduleTrigger(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	writeJson(w, map[string]bool{"ok": true})
}

func writeJson(w http.ResponseWriter, obj interface{}) {
	err := json.NewEncoder(w).Encode(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
