package http

import (
	"net/http"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/commands"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/queries"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const contentTypeFHIRXML = "application/fhir+xml"

type Server struct {
	cmdBus   app.CommandBus
	queryBus app.QueryBus
	validate *validator.Validate
	log      *zap.Logger
}

func NewServer(cmdBus app.CommandBus, queryBus app.QueryBus, log *zap.Logger) *Server {
	return &Server{
		cmdBus:   cmdBus,
		queryBus: queryBus,
		validate: validator.New(),
		log:      log,
	}
}

func (s *Server) ConvertRecord(w http.ResponseWriter, r *http.Request) {
	var in ConvertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd := commands.ConvertRecordCommand{
		Record: in.toRecord(),
	}

	result, err := s.cmdBus.ConvertRecord(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", contentTypeFHIRXML)
	if _, err := w.Write(result.Document); err != nil {
		s.log.Error("failed to write submission document", zap.Error(err))
	}
}

func (s *Server) GetFieldDictionary(w http.ResponseWriter, r *http.Request) {
	result, err := s.queryBus.GetFieldDictionary(r.Context(), queries.GetFieldDictionaryQuery{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(FieldDictionaryResponse{
		EncounterFields: result.EncounterFields,
		CoverageFields:  result.CoverageFields,
	})
}

func (s *Server) GetHealthStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
