package fhir

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir/model"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"
	"github.com/google/uuid"
)

const (
	xmlnsFHIR = "http://hl7.org/fhir"

	// Profiles
	profileEncounter = "https://fhir.cihi.ca/irrs/StructureDefinition/irrs-encounter"

	// Code systems
	csCoverageType    = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	csAccountType     = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	csAdmissionSource = "https://fhir.cihi.ca/irrs/CodeSystem/admission-source"
	csLivingStatus    = "https://fhir.cihi.ca/irrs/CodeSystem/discharge-living-status"

	// Identifier systems
	sysBundleID       = "https://fhir.cihi.ca/irrs/NamingSystem/bundle-id"
	sysOrganizationID = "https://fhir.cihi.ca/irrs/NamingSystem/submitting-organization-id"
	sysFacilityID     = "https://fhir.cihi.ca/irrs/NamingSystem/facility-id"

	// Fixed codes
	coverageTypePublic  = "PUBLICPOL"
	coverageTypePayment = "pay"
	accountTypeBilling  = "PBILLACCT"
	encounterStatus     = "finished"

	// Local ids of contained sub-resources; coverage entries use their own
	// field code as local id.
	containedIDAccount     = "payment-account"
	containedIDAdmitFrom   = "admit-from"
	containedIDDischargeTo = "discharged-to"

	// Fixed update endpoint path for UPDATE submissions.
	requestURLUpdate = "Encounter"
)

// coverageTypeCodes maps each payment-source field to its Coverage.type
// code. iA7a carries the public-plan code; every other source is a generic
// payment type.
var coverageTypeCodes = map[string]string{
	"iA7a": coverageTypePublic,
	"iA7b": coverageTypePayment,
	"iA7c": coverageTypePayment,
	"iA7d": coverageTypePayment,
	"iA7e": coverageTypePayment,
	"iA7f": coverageTypePayment,
	"iA7g": coverageTypePayment,
	"iA7h": coverageTypePayment,
	"iA7i": coverageTypePayment,
	"iA7j": coverageTypePayment,
	"iA7k": coverageTypePayment,
}

// ErrNoRecord is the single fatal condition: there is nothing to convert.
// Every other missing-field situation is a specified omission, not an error.
var ErrNoRecord = errors.New("ccrs: no record to convert")

// Identifiers carries caller-supplied ids for the submission. Blank values
// are replaced with freshly generated UUIDs.
type Identifiers struct {
	Bundle    string
	Patient   string
	Encounter string
}

// Composer builds IRRS submission bundles from flat-file records. It holds
// no per-record state, so one instance can serve many records concurrently.
type Composer struct {
}

func NewComposer() *Composer {
	return &Composer{}
}

// BuildSubmission converts one record into the finished submission document:
// the XML declaration followed by the transaction bundle. Identifiers are
// taken from the record's admin group when supplied.
func (c *Composer) BuildSubmission(rec *record.Record) ([]byte, error) {
	if rec == nil {
		return nil, ErrNoRecord
	}
	bundle := c.BuildBundle(rec, Identifiers{
		Patient:   rec.Admin.PatientID,
		Encounter: rec.Admin.EncounterID,
	})
	body, err := xml.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, err
	}
	doc := make([]byte, 0, len(docDeclaration)+1+len(body)+1)
	doc = append(doc, docDeclaration...)
	doc = append(doc, '\n')
	doc = append(doc, body...)
	doc = append(doc, '\n')
	return doc, nil
}

const docDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// BuildBundle wraps the single encounter entry in the transaction envelope,
// allocating any identifier the caller did not supply.
func (c *Composer) BuildBundle(rec *record.Record, ids Identifiers) model.Bundle {
	bundleID := orNewID(ids.Bundle)
	patientID := orNewID(ids.Patient)
	encounterID := orNewID(ids.Encounter)

	// Operation modes are resolved once at this boundary; everything below
	// branches on the typed values, never on the raw flag strings.
	kind := record.ParseAssessmentKind(rec.Admin.AssessmentType)
	patientOp := record.ParsePatientOperation(rec.Admin.PatientOperation)
	encounterOp := record.ParseEncounterOperation(rec.Admin.EncounterOperation)

	// The resolved start date feeds both the coverage periods and the
	// encounter period. Computed exactly once per record and threaded as a
	// value so the composer stays reusable across records.
	startDate := resolveStartDate(kind, rec)

	enc := encounterFrom(rec, encounterID, patientID, patientOp, startDate)

	fullURL := urnStr(encounterID)
	return model.Bundle{
		Xmlns: xmlnsFHIR,
		ID:    attr(bundleID),
		Identifier: &model.Identifier{
			System: attr(sysBundleID),
			Value:  attr(bundleID),
		},
		Type: attr("transaction"),
		Entry: []model.BundleEntry{{
			FullURL:  attr(fullURL),
			Resource: model.EntryResource{Encounter: enc},
			Request:  requestDirective(encounterOp, fullURL),
		}},
	}
}

// ==============================
// Mapping helpers
// ==============================

// resolveStartDate picks the authoritative stay-start date. Return
// assessments report it in A12, every other assessment in B2. There is no
// fallback between the two fields: a blank candidate means no start date.
func resolveStartDate(kind record.AssessmentKind, rec *record.Record) string {
	if kind == record.AssessmentReturn {
		return rec.Field(record.FieldReturnStayStart)
	}
	return rec.Field(record.FieldStayStart)
}

// coveragesFrom emits one contained Coverage per non-blank payment-source
// field, in the fixed field order, each addressed by its field code.
func coveragesFrom(rec *record.Record, startDate string) []*model.Coverage {
	var out []*model.Coverage
	for _, code := range record.CoverageFieldCodes {
		if !rec.HasField(code) {
			continue
		}
		cov := &model.Coverage{
			ID:   attr(code),
			Type: concept(csCoverageType, coverageTypeCodes[code]),
		}
		if startDate != "" {
			cov.Period = &model.Period{Start: attr(startDate)}
		}
		out = append(out, cov)
	}
	return out
}

// accountFrom aggregates the emitted coverages into one billing account.
// No coverages, no account.
func accountFrom(coverages []*model.Coverage) *model.Account {
	if len(coverages) == 0 {
		return nil
	}
	acct := &model.Account{
		ID:   attr(containedIDAccount),
		Type: concept(csAccountType, accountTypeBilling),
	}
	for _, cov := range coverages {
		acct.Coverage = append(acct.Coverage, model.AccountCoverage{
			Coverage: &model.Reference{Reference: attr(localRef(cov.ID.Value))},
		})
	}
	return acct
}

// admissionLocationFrom builds the admitted-from location when B5A is
// present. The raw admission-source code is used as the type code with no
// terminology translation; upstream sends the CCRS code as-is.
func admissionLocationFrom(rec *record.Record) *model.Location {
	source := rec.Field(record.FieldAdmissionSource)
	if source == "" {
		return nil
	}
	loc := &model.Location{
		ID:   attr(containedIDAdmitFrom),
		Type: concept(csAdmissionSource, source),
	}
	if facility := rec.Field(record.FieldAdmissionFacility); facility != "" {
		loc.ManagingOrganization = &model.Reference{
			Identifier: &model.Identifier{
				System: attr(sysFacilityID),
				Value:  attr(facility),
			},
		}
	}
	return loc
}

// dischargeLocationFrom builds the discharged-to location. All three of
// organization id, living status, and discharge facility gate emission,
// unlike the single-field admission gate.
func dischargeLocationFrom(rec *record.Record) *model.Location {
	org := rec.Field(record.FieldOrganizationID)
	status := rec.Field(record.FieldDischargeLivingStatus)
	facility := rec.Field(record.FieldDischargeFacility)
	if org == "" || status == "" || facility == "" {
		return nil
	}
	return &model.Location{
		ID:   attr(containedIDDischargeTo),
		Type: concept(csLivingStatus, status),
		ManagingOrganization: &model.Reference{
			Identifier: &model.Identifier{
				System: attr(sysFacilityID),
				Value:  attr(facility),
			},
		},
	}
}

// subjectReference addresses the patient either as an existing server
// resource (USE mode) or by bundle-local urn. Nil when no patient id.
func subjectReference(op record.PatientOperation, patientID string) *model.Reference {
	if patientID == "" {
		return nil
	}
	if op == record.PatientOperationUse {
		return &model.Reference{Reference: attr("Patient/" + patientID)}
	}
	return &model.Reference{Reference: attr(urnStr(patientID))}
}

// requestDirective chooses the transaction verb: updates target the fixed
// update endpoint, creates target the entry's own bundle-local identifier.
func requestDirective(op record.EncounterOperation, fullURL string) *model.BundleRequest {
	if op == record.EncounterOperationUpdate {
		return &model.BundleRequest{Method: attr("PUT"), URL: attr(requestURLUpdate)}
	}
	return &model.BundleRequest{Method: attr("POST"), URL: attr(fullURL)}
}

// encounterFrom composes the encounter and its contained sub-resources in
// the order the submission standard mandates: account, coverages, admit-from
// location, discharged-to location.
func encounterFrom(
	rec *record.Record,
	encounterID, patientID string,
	patientOp record.PatientOperation,
	startDate string,
) *model.Encounter {
	coverages := coveragesFrom(rec, startDate)
	account := accountFrom(coverages)
	admission := admissionLocationFrom(rec)
	discharge := dischargeLocationFrom(rec)

	enc := &model.Encounter{
		ID:     attr(encounterID),
		Meta:   &model.Meta{Profile: attr(profileEncounter)},
		Status: attr(encounterStatus),
	}

	if account != nil {
		enc.Contained = append(enc.Contained, model.Contained{Account: account})
	}
	for _, cov := range coverages {
		enc.Contained = append(enc.Contained, model.Contained{Coverage: cov})
	}
	if admission != nil {
		enc.Contained = append(enc.Contained, model.Contained{Location: admission})
	}
	if discharge != nil {
		enc.Contained = append(enc.Contained, model.Contained{Location: discharge})
	}

	enc.Subject = subjectReference(patientOp, patientID)

	if endDate := rec.Field(record.FieldStayEnd); startDate != "" || endDate != "" {
		enc.Period = &model.Period{Start: attr(startDate), End: attr(endDate)}
	}

	if account != nil {
		enc.Account = &model.Reference{Reference: attr(localRef(containedIDAccount))}
	}

	if admission != nil || discharge != nil {
		hosp := &model.Hospitalization{}
		if admission != nil {
			hosp.Origin = &model.Reference{Reference: attr(localRef(containedIDAdmitFrom))}
		}
		if discharge != nil {
			// Bare value, not a structured reference; see model.Hospitalization.
			hosp.Destination = attr(localRef(containedIDDischargeTo))
		}
		enc.Hospitalization = hosp
	}

	if org := rec.Field(record.FieldOrganizationID); org != "" {
		enc.ServiceProvider = &model.Reference{
			Identifier: &model.Identifier{
				System: attr(sysOrganizationID),
				Value:  attr(org),
			},
		}
	}

	return enc
}

// ==============================
// XML helpers
// ==============================

func urnStr(id string) string   { return "urn:uuid:" + id }
func localRef(id string) string { return "#" + id }

func attr(v string) *model.Attr {
	if v == "" {
		return nil
	}
	return &model.Attr{Value: v}
}

func concept(system, code string) *model.CodeableConcept {
	return &model.CodeableConcept{
		Coding: &model.Coding{
			System: attr(system),
			Code:   attr(code),
		},
	}
}

// orNewID treats blank the same way record.Field does: a whitespace-only
// caller value is "not provided" and gets a fresh identifier.
func orNewID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.New().String()
	}
	return s
}
