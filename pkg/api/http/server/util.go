package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/geofabric/batch/internal/utils"
	ie "github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

// mapError returns the http status code for a given coordinator error, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if ie.IsValidation(err) {
		return http.StatusBadRequest
	}
	if ie.IsConflict(err) {
		return http.StatusConflict
	}
	if ie.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func unmarshalQuery(w http.ResponseWriter, r *http.Request, out *structs.Query) error {
	q := r.URL.Query()

	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad limit: %v", err)
		}
		out.Limit = limit
	}

	if q.Has("offset") {
		offset, err := strconv.Atoi(q.Get("offset"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad offset: %v", err)
		}
		out.Offset = offset
	}

	for param, dst := range map[string]*[]string{
		"run_ids":        &out.RunIDs,
		"job_ids":        &out.JobIDs,
		"result_ids":     &out.ResultIDs,
		"collection_ids": &out.CollectionIDs,
	} {
		if !q.Has(param) {
			continue
		}
		*dst = q[param]
		for _, id := range *dst {
			if !utils.IsValidID(id) {
				http.Error(w, "bad "+param, http.StatusBadRequest)
				return fmt.Errorf("bad %s: %v", param, id)
			}
		}
	}

	if q.Has("sources") {
		out.Sources = q["sources"]
	}
	if q.Has("statuses") {
		out.Statuses = []structs.Status{}
		for _, s := range q["statuses"] {
			st := structs.ToStatus(s)
			if st == "" {
				http.Error(w, "bad status", http.StatusBadRequest)
				return fmt.Errorf("bad status: %v", s)
			}
			out.Statuses = append(out.Statuses, st)
		}
	}

	for param, dst := range map[string]**bool{
		"live":   &out.Live,
		"closed": &out.Closed,
	} {
		if !q.Has(param) {
			continue
		}
		b, err := strconv.ParseBool(q.Get(param))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad %s: %v", param, err)
		}
		*dst = &b
	}

	for param, dst := range map[string]*int64{
		"created_before": &out.CreatedBefore,
		"created_after":  &out.CreatedAfter,
	} {
		if !q.Has(param) {
			continue
		}
		ts, err := strconv.ParseInt(q.Get(param), 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad %s: %v", param, err)
		}
		*dst = ts
	}

	out.Sanitize()
	return nil
}

// unmarshalJson reads the body of a request and attempts to unmarshal it into the given object.
// This function write an error to the writer if an error occurs, and returns the error.
func unmarshalJson(w http.ResponseWriter, r *http.Request, obj interface{}) error {
	if r.Body == nil {
		http.Error(w, "No body", http.StatusBadRequest)
		return fmt.Errorf("no body")
	}
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields() // catch unwanted fields

	err := d.Decode(obj)
	if err != nil {
		// bad JSON or unrecognized json field
		http.Error(w, err.Error(), http.StatusBadRequest)
		return fmt.Errorf("bad json: %v", err)
	}

	return nil
}
