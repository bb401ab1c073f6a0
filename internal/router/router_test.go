package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"jet-stamp/internal/platform/logger"
	"jet-stamp/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New(logger.Options{Level: logger.Error, Out: io.Discard})
	return httptest.NewServer(router.NewRouter(router.Options{Logger: log}))
}

func TestHTTP_EndToEnd_IssueAndFetchCertificate(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// 1) Vet emite un certificado con los campos requeridos
	st, body := doReq(t, ts.URL, "POST", "/api/certificates", map[string]any{
		"vet_name":          "Dr. Lee",
		"license_number":    "VT-123",
		"pet_name":          "Rex",
		"pet_type":          "dog",
		"vaccine_type":      "Rabies",
		"date_administered": "2024-01-15",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create certificate, got %d body=%s", st, string(body))
	}

	var created struct {
		Success        bool   `json:"success"`
		CertificateID  string `json:"certificateId"`
		CertificateURL string `json:"certificateUrl"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if !created.Success {
		t.Fatalf("expected success=true body=%s", string(body))
	}
	if !regexp.MustCompile(`^[A-Z0-9]{6}$`).MatchString(created.CertificateID) {
		t.Fatalf("expected 6-char A-Z0-9 id, got %q", created.CertificateID)
	}
	if want := ts.URL + "/certificate/" + created.CertificateID; created.CertificateURL != want {
		t.Fatalf("expected certificateUrl %q, got %q", want, created.CertificateURL)
	}

	// 2) El read API devuelve el registro completo, opcionales ausentes
	st, body = doReq(t, ts.URL, "GET", "/api/certificates/"+created.CertificateID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get certificate, got %d body=%s", st, string(body))
	}

	var cert map[string]any
	if err := json.Unmarshal(body, &cert); err != nil {
		t.Fatalf("unmarshal certificate: %v", err)
	}
	if cert["pet_name"] != "Rex" {
		t.Fatalf("expected pet_name Rex, got %v", cert["pet_name"])
	}
	if cert["date_administered"] != "2024-01-15" {
		t.Fatalf("expected date_administered preserved verbatim, got %v", cert["date_administered"])
	}
	if _, present := cert["clinic_name"]; present {
		t.Fatalf("expected clinic_name absent, got %v", cert["clinic_name"])
	}
	if _, present := cert["next_due_date"]; present {
		t.Fatalf("expected next_due_date absent, got %v", cert["next_due_date"])
	}

	qr, _ := cert["qr_code"].(string)
	if !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Fatalf("expected inline png data uri, got %.40q", qr)
	}

	// 3) El PDF baja como attachment
	resp, err := http.Get(ts.URL + "/api/certificates/" + created.CertificateID + "/pdf")
	if err != nil {
		t.Fatalf("get pdf: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 pdf, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	wantDisp := "attachment; filename=vaccination-certificate-" + created.CertificateID + ".pdf"
	if got := resp.Header.Get("Content-Disposition"); got != wantDisp {
		t.Fatalf("expected disposition %q, got %q", wantDisp, got)
	}
	pdfBytes, _ := io.ReadAll(resp.Body)
	if len(pdfBytes) < 4 || string(pdfBytes[:4]) != "%PDF" {
		t.Fatalf("expected pdf magic bytes, got %.8q", string(pdfBytes))
	}
}

func TestHTTP_CreateCertificate_MissingRequiredFields(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// sin vaccine_type => 400
	st, body := doReq(t, ts.URL, "POST", "/api/certificates", map[string]any{
		"vet_name":          "Dr. Lee",
		"license_number":    "VT-123",
		"pet_name":          "Rex",
		"pet_type":          "dog",
		"date_administered": "2024-01-15",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing field, got %d body=%s", st, string(body))
	}

	var errResp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &errResp)
	if errResp.Error == "" {
		t.Fatalf("expected json error body, got %s", string(body))
	}
}

func TestHTTP_CreateCertificate_InvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/certificates", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid json, got %d", resp.StatusCode)
	}
}

func TestHTTP_GetCertificate_Unknown(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/api/certificates/ZZZZZZ", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/certificates/ZZZZZZ/pdf", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pdf, got %d", st)
	}
}

func TestHTTP_Pages(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	// la raíz redirige al form del vet
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get root: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/vet" {
		t.Fatalf("expected 302 to /vet, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	for _, path := range []string{"/vet", "/certificate/ABC123", "/verify/ABC123"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, st)
		}
		if !strings.Contains(string(body), "<html") {
			t.Fatalf("expected html shell for %s", path)
		}
	}
}

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
