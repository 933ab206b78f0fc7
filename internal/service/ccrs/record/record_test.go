package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	rec := &Record{Fields: map[string]string{
		"B2":  " 2024-01-05 ",
		"R1":  "   ",
		"B5A": "4",
	}}

	assert.Equal(t, "2024-01-05", rec.Field("B2"), "values are trimmed")
	assert.Empty(t, rec.Field("R1"), "blank values read as absent")
	assert.Empty(t, rec.Field("OrgID"), "missing keys read as absent")

	assert.True(t, rec.HasField("B5A"))
	assert.False(t, rec.HasField("R1"))
	assert.False(t, rec.HasField("OrgID"))
}

func TestFieldOnNilMap(t *testing.T) {
	rec := &Record{}
	assert.Empty(t, rec.Field("B2"))
	assert.False(t, rec.HasField("B2"))
}

func TestParseAssessmentKind(t *testing.T) {
	cases := []struct {
		text string
		want AssessmentKind
	}{
		{"", AssessmentStandard},
		{"initial", AssessmentStandard},
		{"quarterly review", AssessmentStandard},
		{"return assessment", AssessmentReturn},
		{"RETURN", AssessmentReturn},
		{"Post-Return Review", AssessmentReturn},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAssessmentKind(tc.text), "text %q", tc.text)
	}
}

func TestParsePatientOperation(t *testing.T) {
	assert.Equal(t, PatientOperationUse, ParsePatientOperation("USE"))
	assert.Equal(t, PatientOperationLocal, ParsePatientOperation("use"))
	assert.Equal(t, PatientOperationLocal, ParsePatientOperation("USE "))
	assert.Equal(t, PatientOperationLocal, ParsePatientOperation(""))
}

func TestParseEncounterOperation(t *testing.T) {
	assert.Equal(t, EncounterOperationUpdate, ParseEncounterOperation("UPDATE"))
	assert.Equal(t, EncounterOperationCreate, ParseEncounterOperation("update"))
	assert.Equal(t, EncounterOperationCreate, ParseEncounterOperation("CREATE"))
	assert.Equal(t, EncounterOperationCreate, ParseEncounterOperation(""))
}
