package event

import (
	"context"
)

type SpreadsheetsAPI interface {
	AppendRow(ctx context.Context, sheetName string, row []string) error
}

type Handler struct {
	spreadsheetsService SpreadsheetsAPI
}

func NewHandler(spreadsheetsService SpreadsheetsAPI) Handler {
	if spreadsheetsService == nil {
		panic("missing spreadsheetsService")
	}

	return Handler{
		spreadsheetsService: spreadsheetsService,
	}
}
