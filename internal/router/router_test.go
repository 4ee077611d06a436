package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fauna-field-log/internal/adapters/geolocation"
	"fauna-field-log/internal/adapters/storage/memory"
	"fauna-field-log/internal/platform/metrics"
	"fauna-field-log/internal/ports/geo"
	"fauna-field-log/internal/router"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type formBody struct {
	ID             string   `json:"id"`
	Mode           string   `json:"mode"`
	Latitude       *float64 `json:"latitude"`
	Locating       bool     `json:"locating"`
	Place          string   `json:"place"`
	Photos         []string `json:"photos"`
	CanAttachPhoto bool     `json:"can_attach_photo"`
}

type captureBody struct {
	ID           string  `json:"id"`
	Place        string  `json:"place"`
	Kind         string  `json:"kind"`
	Species      string  `json:"species"`
	Latitude     float64 `json:"latitude"`
	Synchronized bool    `json:"synchronized"`
	Attack       *struct {
		Outcome string `json:"outcome"`
	} `json:"attack"`
}

func TestHTTP_EndToEnd_CaptureFlow(t *testing.T) {
	app := router.Build(router.Options{
		KV:       memory.NewKV(),
		Locator:  geolocation.Static{Position: geo.Position{Latitude: 4.6097, Longitude: -74.0817}},
		Location: time.UTC,
		Metrics:  metrics.New(),
	})
	ts := httptest.NewServer(app.Handler)
	defer ts.Close()

	// 1) Abrir formulario nuevo
	var form formBody
	{
		st, body := doReq(t, ts.URL, "POST", "/capture-forms", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 open form, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &form)
		if form.ID == "" || form.Mode != "new" {
			t.Fatalf("unexpected form: %s", string(body))
		}
	}
	app.Captures.WaitLocating()

	// 2) Submit sin datos => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/submit", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 on empty submit, got %d", st)
		}
	}

	// 3) Completar campos
	{
		st, body := doReq(t, ts.URL, "PATCH", "/capture-forms/"+form.ID, map[string]any{
			"place":       "Páramo de Chingaza",
			"description": "huellas frescas",
			"species":     "Tremarctos ornatus",
			"kind":        "rastro",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch form, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &form)
		if form.Latitude == nil || *form.Latitude != 4.6097 {
			t.Fatalf("expected resolved position, got %s", string(body))
		}
	}

	// 4) Tres fotos (raw y multipart); la cuarta se rechaza
	for i := 0; i < 3; i++ {
		var st int
		var body []byte
		if i == 0 {
			st, body = doRaw(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/photos", "image/png", pngBytes)
		} else {
			st, body = postMultipartPhoto(t, ts.URL, "/capture-forms/"+form.ID+"/photos", pngBytes)
		}
		if st != http.StatusOK {
			t.Fatalf("expected 200 attaching photo %d, got %d body=%s", i+1, st, string(body))
		}
		_ = json.Unmarshal(body, &form)
	}
	if len(form.Photos) != 3 || form.CanAttachPhoto {
		t.Fatalf("expected 3 photos and attach disabled, got %d/%v", len(form.Photos), form.CanAttachPhoto)
	}
	{
		st, _ := doRaw(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/photos", "image/png", pngBytes)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on 4th photo, got %d", st)
		}
		st, _ = doRaw(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/photos", "text/plain", []byte("hola"))
		if st != http.StatusConflict && st != http.StatusUnsupportedMediaType {
			t.Fatalf("expected rejection of non-image, got %d", st)
		}
	}

	// 5) Guardar
	var saved captureBody
	{
		st, body := doReq(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/submit", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &saved)
		if saved.ID == "" || saved.Kind != "rastro" || saved.Synchronized {
			t.Fatalf("unexpected saved capture: %s", string(body))
		}
	}

	// 6) El formulario ya no existe
	{
		st, _ := doReq(t, ts.URL, "GET", "/capture-forms/"+form.ID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after submit, got %d", st)
		}
	}

	// 7) Editar: cambia a ataque, mantiene id
	{
		st, body := doReq(t, ts.URL, "POST", "/capture-forms", map[string]any{"event_id": saved.ID})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 open edit, got %d body=%s", st, string(body))
		}
		var edit formBody
		_ = json.Unmarshal(body, &edit)
		if edit.Mode != "edit" || edit.Place != "Páramo de Chingaza" || len(edit.Photos) != 3 {
			t.Fatalf("expected prefilled edit form, got %s", string(body))
		}

		st, body = doReq(t, ts.URL, "PATCH", "/capture-forms/"+edit.ID, map[string]any{
			"kind":   "ataque",
			"attack": map[string]any{"animal_type": "bovino", "outcome": "herido"},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch edit, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/capture-forms/"+edit.ID+"/submit", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 submit edit, got %d body=%s", st, string(body))
		}
		var updated captureBody
		_ = json.Unmarshal(body, &updated)
		if updated.ID != saved.ID || updated.Kind != "ataque" || updated.Attack == nil || updated.Attack.Outcome != "herido" {
			t.Fatalf("unexpected edited capture: %s", string(body))
		}
	}

	// 8) Resumen refleja el ataque reciente
	{
		st, body := doReq(t, ts.URL, "GET", "/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var s struct {
			Total       int  `json:"total"`
			AttackAlert bool `json:"attack_alert"`
			TopSpecies  []struct {
				Species string `json:"species"`
				Count   int    `json:"count"`
			} `json:"top_species"`
		}
		_ = json.Unmarshal(body, &s)
		if s.Total != 1 || !s.AttackAlert || len(s.TopSpecies) != 1 || s.TopSpecies[0].Species != "Tremarctos ornatus" {
			t.Fatalf("unexpected summary: %s", string(body))
		}
	}

	// 9) Mapa
	{
		st, body := doReq(t, ts.URL, "GET", "/map/markers", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"color":"#d32f2f"`) {
			t.Fatalf("expected attack marker, got %d body=%s", st, string(body))
		}
	}

	// 10) Borrar requiere confirmación
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/captures/"+saved.ID, nil)
		if st != http.StatusPreconditionRequired {
			t.Fatalf("expected 428 without confirm, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/captures/"+saved.ID+"?confirm=true", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/captures", nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty list, got %d body=%s", st, string(body))
		}
	}

	// 11) Métricas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `fauna_captures_saved_total{mode="edit"} 1`) {
			t.Fatalf("expected capture metrics, got %d", st)
		}
	}
}

func TestHTTP_DevicePositionAndClose(t *testing.T) {
	app := router.Build(router.Options{})
	ts := httptest.NewServer(app.Handler)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/capture-forms", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}
	var form formBody
	_ = json.Unmarshal(body, &form)
	app.Captures.WaitLocating()

	st, body = doReq(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/position", map[string]any{"latitude": 95, "longitude": 0})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid latitude, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/position", map[string]any{"latitude": -12.5, "longitude": 130.8})
	if st != http.StatusOK {
		t.Fatalf("expected 200 device position, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &form)
	if form.Latitude == nil || *form.Latitude != -12.5 {
		t.Fatalf("expected device position applied, got %s", string(body))
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/capture-forms/"+form.ID, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 close, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/capture-forms/"+form.ID+"/submit", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after close, got %d", st)
	}
}

func TestHTTP_ProfileAndAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/profile", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"name":"Usuario Ejemplo"`) {
		t.Fatalf("expected default profile, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "POST", "/auth/register", map[string]any{
		"name": "Ana", "email": "ana@ejemplo.com", "password": "x", "confirm_password": "y",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on password mismatch, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/auth/register", map[string]any{
		"name": "Ana", "email": "ana@ejemplo.com", "password": "x", "confirm_password": "x",
	})
	if st != http.StatusCreated || !strings.Contains(string(body), `"token":"ses-`) {
		t.Fatalf("expected 201 register with token, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/profile", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"name":"Ana"`) || !strings.Contains(string(body), `"event_count":0`) {
		t.Fatalf("expected registered profile, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "PUT", "/profile", map[string]any{"name": "Ana", "email": ""})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty email, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/auth/login", map[string]any{"email": "ana@ejemplo.com", "password": "x"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/auth/forgot-password", map[string]any{"email": "ana@ejemplo.com"})
	if st != http.StatusAccepted {
		t.Fatalf("expected 202 forgot password, got %d", st)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d %q", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/capture-forms/{formID}/submit") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func postMultipartPhoto(t *testing.T, baseURL, path string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "foto.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write(content)
	_ = mw.Close()

	return doRaw(t, baseURL, "POST", path, mw.FormDataContentType(), buf.Bytes())
}

func doRaw(t *testing.T, baseURL, method, path, contentType string, body []byte) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
