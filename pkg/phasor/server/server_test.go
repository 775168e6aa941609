package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/phasor-go/pkg/phasor/config"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
	"github.com/ukaji3/phasor-go/pkg/phasor/output"
	"github.com/xuri/excelize/v2"
)

const phasorReport = `<html><body>
<table>
  <tr><th>Parámetro</th><th>A</th><th>B</th><th>C</th></tr>
  <tr><td>Ángulo de fase de voltaje</td><td>0</td><td>-120</td><td>120</td></tr>
  <tr><td>Ángulo de fase de corriente</td><td>-30</td><td>-150</td><td>90</td></tr>
  <tr><td>Nota</td><td>&lt;script&gt;alert(1)&lt;/script&gt;</td><td></td><td></td></tr>
</table>
</body></html>`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func uploadRequest(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestDiagramJSON(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/api/diagram", "file", "informe.html", phasorReport))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "informe.html", report.Source)
	assert.Equal(t, 1, report.TableCount)
	require.NotNil(t, report.Diagram)
	assert.Len(t, report.Diagram.Arcs, 3)
}

func TestDiagramJSONNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/api/diagram", "file", "otro.html", "<table><tr><td>x</td></tr></table>"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "NotFound", report.ErrorKind)
	assert.Nil(t, report.Diagram)
}

func TestDiagramXLSX(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/api/diagram.xlsx", "file", "informe.html", phasorReport))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{output.SheetAngles, output.SheetArcs, output.SheetTable}, f.GetSheetList())
	rows, err := f.GetRows(output.SheetArcs)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestDiagramXLSXFailure(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/api/diagram.xlsx", "file", "otro.html", "<table><tr><td>x</td></tr></table>"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "NotFound", report.ErrorKind)
}

func TestDiagramMissingField(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/api/diagram", "document", "informe.html", phasorReport))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagramPage(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/diagram", "file", "informe.html", phasorReport))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 tablas encontradas en el HTML.")
	assert.Contains(t, body, "Tabla relevante encontrada.")
	assert.Contains(t, body, "Vista previa de la tabla")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "ΘA")
	assert.NotContains(t, body, "<script>alert")
	assert.NotContains(t, body, `class="error"`)
}

func TestDiagramPageError(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, uploadRequest(t, "/diagram", "file", "vacio.html", "<p>nada</p>"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, "DocumentParseError")
	assert.NotContains(t, body, "<svg")
}

func TestIndexAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `enctype="multipart/form-data"`)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}
