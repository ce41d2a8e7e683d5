package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/acadinfo/backend/core/catalog"
)

func TestCatalogApiDirectory(t *testing.T) {
	t.Run("sports", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/catalog/sports")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, ctl.Sports())}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("states are sorted", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/catalog/states")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, ctl.States())}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("cities", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/catalog/states/Karnataka/cities")
		app.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []string{"Bangalore", "Mysore", "Hubli", "Mangalore"}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("cities of an unknown state", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/catalog/states/Atlantis/cities")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		checkCodeAndData(t, tt, rec)
	})
}

func TestCatalogApiAcademies(t *testing.T) {
	tests := []httpTest{
		{
			name:     "missing query",
			path:     "/v1/catalog/academies",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown sport",
			path:     "/v1/catalog/academies?sport=Cricketing&state=Delhi",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "unknown state",
			path:     "/v1/catalog/academies?sport=Cricket&state=Atlantis",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "listed sport without academies",
			path:     "/v1/catalog/academies?sport=Tennis&state=Delhi",
			wantCode: http.StatusOK,
			wantData: []byte(`[]`),
		},
		{
			name:     "cricket in Delhi",
			path:     "/v1/catalog/academies?sport=Cricket&state=Delhi",
			wantCode: http.StatusOK,
			extra:    []string{"Delhi Cricket Academy", "National Cricket Center"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt, rec)
			wantNames, ok := tt.extra.([]string)
			if !ok {
				return
			}
			var accs []catalog.Academy
			if err := json.Unmarshal(rec.Body.Bytes(), &accs); err != nil {
				t.Fatalf("unmarshaling academies failed: %v", err)
			}
			if len(accs) != len(wantNames) {
				t.Fatalf("len(academies) = %d; want %d", len(accs), len(wantNames))
			}
			for i, name := range wantNames {
				if accs[i].Name != name {
					t.Errorf("academies[%d].Name = %v; want %v", i, accs[i].Name, name)
				}
			}
		})
	}
}

func TestCatalogApiCourses(t *testing.T) {
	tests := []httpTest{
		{
			name:     "list",
			path:     "/v1/catalog/courses",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, ctl.Courses()),
		},
		{
			name:     "by id",
			path:     "/v1/catalog/courses/2",
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown id",
			path:     "/v1/catalog/courses/99",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "non-numeric id",
			path:     "/v1/catalog/courses/abc",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt, rec)
			if tt.name != "by id" {
				return
			}
			var course catalog.Course
			if err := json.Unmarshal(rec.Body.Bytes(), &course); err != nil {
				t.Fatalf("unmarshaling course failed: %v", err)
			}
			if course.ID != 2 || course.Title != "Advanced Cricket Techniques" {
				t.Errorf("course = %+v", course)
			}
		})
	}
}

func TestCatalogApiWebinars(t *testing.T) {
	t.Run("list carries seat counters", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/catalog/webinars")
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
		}
		var resp []struct {
			ID         int `json:"id"`
			Seats      int `json:"seats"`
			Registered int `json:"registered"`
			SeatsLeft  int `json:"seats_left"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshaling webinars failed: %v", err)
		}
		if len(resp) != 4 {
			t.Fatalf("len(webinars) = %d; want 4", len(resp))
		}
		for _, wr := range resp {
			w, err := ctl.LookupWebinar(wr.ID)
			if err != nil {
				t.Fatalf("LookupWebinar(%d) failed: %v", wr.ID, err)
			}
			if wr.Registered != w.Registered() || wr.SeatsLeft != w.SeatsLeft() {
				t.Errorf("webinar %d counters = %d/%d; want %d/%d",
					wr.ID, wr.Registered, wr.SeatsLeft, w.Registered(), w.SeatsLeft())
			}
			if wr.SeatsLeft != wr.Seats-wr.Registered {
				t.Errorf("webinar %d seats_left = %d; want %d", wr.ID, wr.SeatsLeft, wr.Seats-wr.Registered)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}
		req, rec := newRequest(http.MethodGet, "/v1/catalog/webinars/42")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func TestCatalogApiEquipment(t *testing.T) {
	tests := []httpTest{
		{
			name:     "list",
			path:     "/v1/catalog/equipment",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, ctl.Equipment()),
		},
		{
			name:     "by id",
			path:     "/v1/catalog/equipment/4",
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown id",
			path:     "/v1/catalog/equipment/99",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt, rec)
			if tt.name != "by id" {
				return
			}
			var item catalog.Equipment
			if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
				t.Fatalf("unmarshaling equipment failed: %v", err)
			}
			if item.ID != 4 || item.Name != "Chess Set (Staunton Tournament)" {
				t.Errorf("equipment = %+v", item)
			}
		})
	}
}
