package http

import "github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"

// ConvertRecordRequest is the inbound JSON shape for one flat-file record.
// The upstream parser has already tokenized the flat file; admin carries the
// operation flags and caller-supplied identifiers, fields the coded values.
// Both groups may be sparse or absent: missing data is an omission rule for
// the composer, never a request error.
type ConvertRecordRequest struct {
	Admin  AdminFields       `json:"admin"`
	Fields map[string]string `json:"fields"`
}

type AdminFields struct {
	AssessmentType     string `json:"assessmentType"`
	PatientOperation   string `json:"patientOperation"`
	EncounterOperation string `json:"encounterOperation"`
	PatientID          string `json:"patientId" validate:"omitempty,max=128"`
	EncounterID        string `json:"encounterId" validate:"omitempty,max=128"`
}

func (r ConvertRecordRequest) toRecord() *record.Record {
	return &record.Record{
		Admin: record.Admin{
			AssessmentType:     r.Admin.AssessmentType,
			PatientOperation:   r.Admin.PatientOperation,
			EncounterOperation: r.Admin.EncounterOperation,
			PatientID:          r.Admin.PatientID,
			EncounterID:        r.Admin.EncounterID,
		},
		Fields: r.Fields,
	}
}

type FieldDictionaryResponse struct {
	EncounterFields map[string]string `json:"encounterFields"`
	CoverageFields  []string          `json:"coverageFields"`
}
