package record

import "strings"

// Field codes consulted by the composer. The field dictionary itself is
// owned by the upstream flat-file parser; only the codes used here are named.
const (
	FieldStayStart             = "B2"
	FieldReturnStayStart       = "A12"
	FieldStayEnd               = "R1"
	FieldAdmissionSource       = "B5A"
	FieldAdmissionFacility     = "B5B"
	FieldOrganizationID        = "OrgID"
	FieldDischargeLivingStatus = "R2"
	FieldDischargeFacility     = "R4"
)

// CoverageFieldCodes lists the eleven payment-source fields in submission
// order. Contained Coverage resources are emitted in this order regardless
// of input order.
var CoverageFieldCodes = []string{
	"iA7a", "iA7b", "iA7c", "iA7d", "iA7e", "iA7f",
	"iA7g", "iA7h", "iA7i", "iA7j", "iA7k",
}

// Admin carries the operation-mode flags and caller-supplied identifiers
// from the flat file's administrative group.
type Admin struct {
	AssessmentType     string
	PatientOperation   string
	EncounterOperation string
	PatientID          string
	EncounterID        string
}

// Record is the parsed flat-file record produced by the upstream parser.
// It is read-only from the composer's point of view.
type Record struct {
	Admin  Admin
	Fields map[string]string
}

// Field returns the value for code with surrounding whitespace removed.
// Absent and blank values both come back empty; callers treat empty as
// "not provided" and omit the output element entirely.
func (r *Record) Field(code string) string {
	return strings.TrimSpace(r.Fields[code])
}

// HasField reports whether code carries a non-blank value.
func (r *Record) HasField(code string) bool {
	return r.Field(code) != ""
}

// AssessmentKind selects which stay-start field is authoritative.
type AssessmentKind int

const (
	// AssessmentStandard reads the stay-start date from B2.
	AssessmentStandard AssessmentKind = iota
	// AssessmentReturn reads the stay-start date from A12 instead.
	AssessmentReturn
)

// ParseAssessmentKind resolves the free-text assessment type into a kind.
// Any text containing "return", in any case, marks a return assessment.
func ParseAssessmentKind(text string) AssessmentKind {
	if strings.Contains(strings.ToLower(text), "return") {
		return AssessmentReturn
	}
	return AssessmentStandard
}

// PatientOperation selects how the encounter subject addresses the patient.
type PatientOperation int

const (
	// PatientOperationLocal addresses the patient by bundle-local urn:uuid.
	PatientOperationLocal PatientOperation = iota
	// PatientOperationUse addresses an existing server resource, Patient/{id}.
	PatientOperationUse
)

// ParsePatientOperation resolves the patient-operation flag. Only the exact
// value "USE" selects resource-style addressing; anything else, including
// an absent flag, falls back to bundle-local addressing.
func ParsePatientOperation(flag string) PatientOperation {
	if flag == "USE" {
		return PatientOperationUse
	}
	return PatientOperationLocal
}

// EncounterOperation selects the transaction request directive.
type EncounterOperation int

const (
	// EncounterOperationCreate submits the encounter as a new resource.
	EncounterOperationCreate EncounterOperation = iota
	// EncounterOperationUpdate submits against the fixed update endpoint.
	EncounterOperationUpdate
)

// ParseEncounterOperation resolves the encounter-operation flag. Only the
// exact value "UPDATE" selects an update; anything else creates.
func ParseEncounterOperation(flag string) EncounterOperation {
	if flag == "UPDATE" {
		return EncounterOperationUpdate
	}
	return EncounterOperationCreate
}
