package queries

import (
	"context"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"
)

type GetFieldDictionaryQuery struct {
}

type GetFieldDictionaryResult struct {
	// EncounterFields maps each consulted field code to a short description.
	EncounterFields map[string]string
	// CoverageFields lists the payment-source codes in submission order.
	CoverageFields []string
}

type GetFieldDictionaryQueryHandler interface {
	Handle(ctx context.Context, query GetFieldDictionaryQuery) (result GetFieldDictionaryResult, err error)
}

func NewGetFieldDictionaryQueryHandler() GetFieldDictionaryQueryHandler {
	return &getFieldDictionaryQueryHandler{}
}

type getFieldDictionaryQueryHandler struct {
}

func (h *getFieldDictionaryQueryHandler) Handle(ctx context.Context, query GetFieldDictionaryQuery) (GetFieldDictionaryResult, error) {
	return GetFieldDictionaryResult{
		EncounterFields: map[string]string{
			record.FieldStayStart:             "stay start date",
			record.FieldReturnStayStart:       "stay start date (return assessments)",
			record.FieldStayEnd:               "stay end date",
			record.FieldAdmissionSource:       "admission source code",
			record.FieldAdmissionFacility:     "admission facility id",
			record.FieldOrganizationID:        "submitting organization id",
			record.FieldDischargeLivingStatus: "discharge living-status code",
			record.FieldDischargeFacility:     "discharge facility id",
		},
		CoverageFields: record.CoverageFieldCodes,
	}, nil
}
