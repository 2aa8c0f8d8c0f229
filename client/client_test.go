package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nakala/record"
)

// testClient returns a client pointed at a local test server with the
// inter-call delay disabled.
func testClient(ts *httptest.Server) *Client {
	c := New(ts.URL, "test-key")
	c.Delay = 0
	return c
}

func TestCreateDataUnwrapsEnvelope(t *testing.T) {
	var gotKey, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"code":201,"message":"Data created","payload":{"id":"10.34847/nkl.abc12345"}}`)
	}))
	defer ts.Close()

	c := testClient(ts)
	data := record.NewData()
	data.AddMeta(record.NewTitle("Test deposit", "en"))

	id, err := c.CreateData(context.Background(), data)
	if err != nil {
		t.Fatalf("CreateData: %v", err)
	}
	if id != "10.34847/nkl.abc12345" {
		t.Errorf("got id %q, want %q", id, "10.34847/nkl.abc12345")
	}
	if gotKey != "test-key" {
		t.Errorf("got X-API-KEY %q, want %q", gotKey, "test-key")
	}
	if gotPath != "/datas" {
		t.Errorf("got path %q, want /datas", gotPath)
	}
}

func TestGetDataDecodesPersons(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"status": "pending",
			"metas": [
				{"propertyUri": "http://nakala.fr/terms#title", "value": "Fieldwork photos", "lang": "en", "typeUri": "http://www.w3.org/2001/XMLSchema#string"},
				{"propertyUri": "http://nakala.fr/terms#creator", "value": {"surname": "Dupont", "givenname": "Marie", "orcid": "0000-0002-1825-0097"}}
			]
		}`)
	}))
	defer ts.Close()

	data, err := testClient(ts).GetData(context.Background(), "10.34847/nkl.abc12345")
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if got := data.Title("en"); got != "Fieldwork photos" {
		t.Errorf("got title %q, want %q", got, "Fieldwork photos")
	}
	creators := record.Creators(data.Metas)
	if len(creators) != 1 {
		t.Fatalf("got %d creators, want 1", len(creators))
	}
	if creators[0].Surname != "Dupont" || creators[0].ORCID != "0000-0002-1825-0097" {
		t.Errorf("creator not decoded: %+v", creators[0])
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode int
	}{
		{
			name:     "json envelope",
			status:   http.StatusUnauthorized,
			body:     `{"code": 401, "message": "API Key not found"}`,
			wantMsg:  "API Key not found",
			wantCode: 401,
		},
		{
			name:    "plain body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantMsg: "upstream down",
		},
		{
			name:   "empty body",
			status: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer ts.Close()

			_, err := testClient(ts).GetData(context.Background(), "nkl.missing")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("got %T, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("got status %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("got message %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("got code %d, want %d", apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code": 404, "message": "Data not found"}`)
	}))
	defer ts.Close()

	// GetData wraps the *APIError, so this exercises the unwrapping.
	_, err := testClient(ts).GetData(context.Background(), "nkl.missing")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for wrapped 404: %v", err)
	}
	if !IsNotFound(&APIError{Status: http.StatusNotFound}) {
		t.Errorf("IsNotFound = false for bare 404")
	}
	if IsNotFound(errors.New("plain")) {
		t.Errorf("IsNotFound = true for non-API error")
	}
}

func TestDeleteDataMetasSendsFilter(t *testing.T) {
	var gotMethod string
	var gotBody record.MetaFilter
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	filter := record.MetaFilter{PropertyURI: record.PropSubject, Lang: "fr"}
	if err := testClient(ts).DeleteDataMetas(context.Background(), "nkl.abc", filter); err != nil {
		t.Fatalf("DeleteDataMetas: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("got method %s, want DELETE", gotMethod)
	}
	if gotBody != filter {
		t.Errorf("got filter %+v, want %+v", gotBody, filter)
	}
}

func TestSetDataStatus(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := testClient(ts)
	if err := c.SetDataStatus(context.Background(), "10.34847/nkl.abc", record.StatusPublished); err != nil {
		t.Fatalf("SetDataStatus: %v", err)
	}
	if want := "/datas/10.34847%2Fnkl.abc/status/published"; gotPath != want {
		// Some servers normalize the escaped slash; accept both forms.
		if gotPath != "/datas/10.34847/nkl.abc/status/published" {
			t.Errorf("got path %q, want %q", gotPath, want)
		}
	}

	if err := c.SetDataStatus(context.Background(), "nkl.abc", "archived"); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestAddDataToCollectionsSendsIDArray(t *testing.T) {
	var gotBody []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	ids := []string{"10.34847/nkl.coll1", "10.34847/nkl.coll2"}
	if err := testClient(ts).AddDataToCollections(context.Background(), "nkl.abc", ids); err != nil {
		t.Fatalf("AddDataToCollections: %v", err)
	}
	if len(gotBody) != 2 || gotBody[0] != ids[0] || gotBody[1] != ids[1] {
		t.Errorf("got body %v, want %v", gotBody, ids)
	}
}

func TestAddDataRightsRejectsUnknownRole(t *testing.T) {
	c := New("", "")
	err := c.AddDataRights(context.Background(), "nkl.abc", []record.Right{
		{ID: "user-uuid", Role: "ROLE_SUPERUSER"},
	})
	if err == nil || !strings.Contains(err.Error(), "invalid role") {
		t.Errorf("got %v, want invalid role error", err)
	}
}

func TestUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/datas/uploads" {
			t.Errorf("got path %q, want /datas/uploads", r.URL.Path)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("reading form file: %v", err)
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		if string(content) != "hello" {
			t.Errorf("got content %q, want %q", content, "hello")
		}
		if header.Filename != "notes.txt" {
			t.Errorf("got filename %q, want notes.txt", header.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"name":"notes.txt","sha1":"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d","size":5,"mime_type":"text/plain"}`)
	}))
	defer ts.Close()

	info, err := testClient(ts).Upload(context.Background(), "notes.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if info.SHA1 != "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d" {
		t.Errorf("got sha1 %q", info.SHA1)
	}
	if info.Embargoed == "" {
		t.Error("embargo date not stamped")
	}
}

func TestCreateGroupValidation(t *testing.T) {
	c := New("", "")
	if _, err := c.CreateGroup(context.Background(), &record.Group{Name: "empty"}); err == nil {
		t.Error("expected error for group without members")
	}
	group := &record.Group{
		Name:  "team",
		Users: []record.GroupUser{{Username: "tnakala", Role: "ROLE_VIEWER"}},
	}
	if _, err := c.CreateGroup(context.Background(), group); err == nil {
		t.Error("expected error for unknown role")
	}
	// The rights roles are not group roles.
	group.Users[0].Role = record.RoleReader
	if _, err := c.CreateGroup(context.Background(), group); err == nil {
		t.Error("expected error for rights role in group payload")
	}
}

func TestCreateGroupAcceptsMemberRoles(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"code": 201, "payload": {"id": "group-uuid"}}`)
	}))
	defer ts.Close()

	group := &record.Group{
		Name: "Research Team A",
		Users: []record.GroupUser{
			{Username: "tnakala", Role: record.GroupRoleUser},
			{Username: "alice", Role: record.GroupRoleAdmin},
		},
	}
	id, err := testClient(ts).CreateGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	if id != "group-uuid" {
		t.Errorf("got id %q, want %q", id, "group-uuid")
	}
}

func TestSearchUsers(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[{"id":"user-uuid","username":"tnakala","fullname":"Test NAKALA"}]`)
	}))
	defer ts.Close()

	users, err := testClient(ts).SearchUsers(context.Background(), "test nakala", 5)
	if err != nil {
		t.Fatalf("SearchUsers: %v", err)
	}
	if len(users) != 1 || users[0].Username != "tnakala" {
		t.Errorf("got users %+v", users)
	}
	if gotQuery != "q=test+nakala&limit=5" {
		t.Errorf("got query %q", gotQuery)
	}
}
