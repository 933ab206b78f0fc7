package commands

import (
	"context"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/adapters/fhir"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/record"
	"go.uber.org/zap"
)

type ConvertRecordCommand struct {
	Record *record.Record
}

type ConvertRecordResult struct {
	// Document is the finished submission: XML declaration plus bundle.
	Document []byte
}

type ConvertRecordHandler interface {
	Handle(ctx context.Context, cmd ConvertRecordCommand) (result ConvertRecordResult, err error)
}

func NewConvertRecordHandler(composer *fhir.Composer, log *zap.Logger) ConvertRecordHandler {
	return &convertRecordCmdHandler{
		composer: composer,
		log:      log,
	}
}

type convertRecordCmdHandler struct {
	composer *fhir.Composer
	log      *zap.Logger
}

func (h *convertRecordCmdHandler) Handle(ctx context.Context, cmd ConvertRecordCommand) (ConvertRecordResult, error) {
	doc, err := h.composer.BuildSubmission(cmd.Record)
	if err != nil {
		h.log.Warn("record conversion rejected", zap.Error(err))
		return ConvertRecordResult{}, err
	}

	h.log.Info("record converted",
		zap.Int("document_bytes", len(doc)),
		zap.String("assessment_type", cmd.Record.Admin.AssessmentType),
	)

	return ConvertRecordResult{Document: doc}, nil
}
