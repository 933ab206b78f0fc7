package app

import (
	"context"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/commands"
	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service/ccrs/app/queries"
)

type CommandBus interface {
	ConvertRecord(ctx context.Context, cmd commands.ConvertRecordCommand) (commands.ConvertRecordResult, error)
}

type QueryBus interface {
	GetFieldDictionary(ctx context.Context, q queries.GetFieldDictionaryQuery) (queries.GetFieldDictionaryResult, error)
}

type commandBus struct {
	convertRecord commands.ConvertRecordHandler
}

type queryBus struct {
	getFieldDictionary queries.GetFieldDictionaryQueryHandler
}

func NewCommandBus(
	convert commands.ConvertRecordHandler,
) CommandBus {
	return &commandBus{
		convertRecord: convert,
	}
}

func NewQueryBus(
	getDict queries.GetFieldDictionaryQueryHandler,
) QueryBus {
	return &queryBus{
		getFieldDictionary: getDict,
	}
}

func (b *commandBus) ConvertRecord(ctx context.Context, cmd commands.ConvertRecordCommand) (commands.ConvertRecordResult, error) {
	return b.convertRecord.Handle(ctx, cmd)
}

func (b *queryBus) GetFieldDictionary(ctx context.Context, q queries.GetFieldDictionaryQuery) (queries.GetFieldDictionaryResult, error) {
	return b.getFieldDictionary.Handle(ctx, q)
}
