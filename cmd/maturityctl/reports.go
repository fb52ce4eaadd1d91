package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/godilite/maturity-server/internal/app"
	"github.com/godilite/maturity-server/internal/service"
)

// openReports builds a ReportService over the configured store.
func openReports(ctx context.Context) (*service.ReportService, func(), error) {
	storage, closeFn, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return service.NewReportService(storage, logger), closeFn, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
