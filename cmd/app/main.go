package main

import (
	"context"

	"github.com/caretech-interop/ccrs-fhir-bridge/internal/service"
)

func main() {
	ctx := context.Background()

	svc, err := service.NewSubmissionService()
	if err != nil {
		panic(err)
	}

	err = svc.Start(ctx)
	if err != nil {
		panic(err)
	}
}
