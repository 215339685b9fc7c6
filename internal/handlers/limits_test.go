package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetLimits(t *testing.T) {
	r := newTestRouter(newAuthedService())

	cases := []struct {
		path      string
		wantCode  int
		wantUpper int
	}{
		{"/api/v1/limits/PASSIVE", http.StatusOK, 35},
		{"/api/v1/limits/high_active", http.StatusOK, 45},
		{"/api/v1/limits/MED_ACTIVE_COOLING", http.StatusOK, 40},
		{"/api/v1/limits/LIQUID", http.StatusBadRequest, 0},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header = authHeader(testToken)
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var out limitsResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Lower != 0 || out.Upper != tc.wantUpper {
				t.Fatalf("got %+v, want 0/%d", out, tc.wantUpper)
			}
		})
	}
}

func TestGetLimits_RequiresToken(t *testing.T) {
	r := newTestRouter(newAuthedService())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/limits/PASSIVE", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestClassify(t *testing.T) {
	r := newTestRouter(newAuthedService())

	cases := []struct {
		name       string
		body       string
		wantCode   int
		wantBreach string
	}{
		{"lower bound inclusive", `{"strategy":"PASSIVE","temperature_c":0}`, http.StatusOK, "NORMAL"},
		{"upper bound inclusive", `{"strategy":"PASSIVE","temperature_c":35}`, http.StatusOK, "NORMAL"},
		{"just above", `{"strategy":"PASSIVE","temperature_c":35.5}`, http.StatusOK, "TOO_HIGH"},
		{"below", `{"strategy":"HIGH_ACTIVE","temperature_c":-0.1}`, http.StatusOK, "TOO_LOW"},
		{"medium 41", `{"strategy":"MEDIUM_ACTIVE","temperature_c":41}`, http.StatusOK, "TOO_HIGH"},
		{"unknown strategy", `{"strategy":"LIQUID","temperature_c":10}`, http.StatusBadRequest, ""},
		{"missing temperature", `{"strategy":"PASSIVE"}`, http.StatusBadRequest, ""},
		{"malformed", `{"strategy":`, http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", bytes.NewBufferString(tc.body))
			req.Header = authHeader(testToken)
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantBreach == "" {
				return
			}
			var out map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out["breach"] != tc.wantBreach {
				t.Fatalf("breach=%v want %s", out["breach"], tc.wantBreach)
			}
		})
	}
}
