package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/commands"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/queries"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	log := zap.NewNop()
	composer := fhir.NewComposer()
	cmdBus := app.NewCommandBus(commands.NewConvertRecordHandler(composer, log))
	queryBus := app.NewQueryBus(queries.NewGetFieldDictionaryQueryHandler())
	return Router(NewServer(cmdBus, queryBus, log))
}

func TestConvertRecordEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("returns the submission document", func(t *testing.T) {
		body := `{
			"admin": {"assessmentType": "initial", "patientOperation": "USE", "patientId": "pat-1"},
			"fields": {"B2": "2024-01-05", "iA7a": "X"}
		}`
		req := httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, contentTypeFHIRXML, rr.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rr.Body.String(), "<?xml"))
		assert.Contains(t, rr.Body.String(), `<reference value="Patient/pat-1">`)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("converts a record without encounter fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(`{"admin": {}}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `<type value="transaction">`)
		assert.Contains(t, rr.Body.String(), "<Encounter>")
	})

	t.Run("converts an empty record body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/conversions", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.HasPrefix(rr.Body.String(), "<?xml"))
	})
}

func TestFieldDictionaryEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/fields", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp FieldDictionaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.CoverageFields, 11)
	assert.Contains(t, resp.EncounterFields, "B2")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
