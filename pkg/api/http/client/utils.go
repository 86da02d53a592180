package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/geofabric/batch/pkg/structs"
)

// genericSend is a helper to send JSON to a given URL with the given method
// and unmarshal the response.
func genericSend(method string, addr *url.URL, in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, addr.String(), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	} else if resp.Body == nil {
		return fmt.Errorf("no response body with status code %d", resp.StatusCode)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

func genericPost(addr *url.URL, in interface{}, out interface{}) error {
	return genericSend(http.MethodPost, addr, in, out)
}

func genericPatch(addr *url.URL, in interface{}, out interface{}) error {
	return genericSend(http.MethodPatch, addr, in, out)
}

func genericPut(addr *url.URL, in interface{}, out interface{}) error {
	return genericSend(http.MethodPut, addr, in, out)
}

func genericDelete(addr *url.URL, out interface{}) error {
	return genericSend(http.MethodDelete, addr, nil, out)
}

// genericGet is a helper to GET data from a given URL and unmarshal the response.
// Implies the Query string is already set, if needed.
func genericGet(addr *url.URL, out interface{}) error {
	resp, err := http.Get(addr.String())
	if err != nil {
		return err
	} else if resp.Body == nil { // there is no data to read
		if resp.StatusCode >= 400 {
			return fmt.Errorf("bad status code: %d", resp.StatusCode)
		}
		return nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// setQueryString sets the query string of a URL based on the given query object.
func setQueryString(u *url.URL, q *structs.Query) {
	if q == nil {
		return
	}
	q.Sanitize()
	values := u.Query()

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.RunIDs != nil {
		values["run_ids"] = q.RunIDs
	}
	if q.JobIDs != nil {
		values["job_ids"] = q.JobIDs
	}
	if q.ResultIDs != nil {
		values["result_ids"] = q.ResultIDs
	}
	if q.CollectionIDs != nil {
		values["collection_ids"] = q.CollectionIDs
	}
	if q.Sources != nil {
		values["sources"] = q.Sources
	}
	if q.Statuses != nil {
		ss := []string{}
		for _, s := range q.Statuses {
			ss = append(ss, string(s))
		}
		values["statuses"] = ss
	}
	if q.Live != nil {
		values.Set("live", strconv.FormatBool(*q.Live))
	}
	if q.Closed != nil {
		values.Set("closed", strconv.FormatBool(*q.Closed))
	}
	if q.CreatedBefore > 0 {
		values.Set("created_before", strconv.FormatInt(q.CreatedBefore, 10))
	}
	if q.CreatedAfter > 0 {
		values.Set("created_after", strconv.FormatInt(q.CreatedAfter, 10))
	}

	u.RawQuery = values.Encode()
}
