package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConvertRecordHandler(t *testing.T) {
	h := NewConvertRecordHandler(fhir.NewComposer(), zap.NewNop())

	t.Run("converts a record into a submission document", func(t *testing.T) {
		rec := &record.Record{
			Admin:  record.Admin{AssessmentType: "initial"},
			Fields: map[string]string{"B2": "2024-01-05", "iA7a": "X"},
		}

		result, err := h.Handle(context.Background(), ConvertRecordCommand{Record: rec})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(result.Document), "<?xml"))
		assert.Contains(t, string(result.Document), "<Coverage>")
	})

	t.Run("rejects a missing record", func(t *testing.T) {
		_, err := h.Handle(context.Background(), ConvertRecordCommand{})
		require.ErrorIs(t, err, fhir.ErrNoRecord)
	})
}
