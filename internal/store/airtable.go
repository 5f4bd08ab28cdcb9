package store

import (
	"context"
	"fmt"

	"github.com/mehanizm/airtable"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// AirtableTable stores reviews in an Airtable table. Sorting and limiting
// are done by Airtable.
type AirtableTable struct {
	table *airtable.Table
}

// NewAirtableTable returns a table backed by tableName in the Airtable base baseID.
func NewAirtableTable(token, baseID, tableName string) *AirtableTable {
	client := airtable.NewClient(token)
	return &AirtableTable{table: client.GetTable(baseID, tableName)}
}

func (a *AirtableTable) Create(ctx context.Context, fields map[string]any) (models.Record, error) {
	if err := ctx.Err(); err != nil {
		return models.Record{}, err
	}
	created, err := a.table.AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: fields}},
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("airtable: unable to create record: %w", err)
	}
	if created == nil || len(created.Records) == 0 {
		return models.Record{}, fmt.Errorf("airtable: no record returned after create")
	}
	return fromAirtable(created.Records[0]), nil
}

func (a *AirtableTable) All(ctx context.Context, opts models.ListOptions) ([]models.Record, error) {
	records := []models.Record{}
	offset := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		query := a.table.GetRecords()
		for _, k := range parseSort(opts.Sort) {
			direction := "asc"
			if k.desc {
				direction = "desc"
			}
			query = query.WithSort(struct {
				FieldName string
				Direction string
			}{FieldName: k.field, Direction: direction})
		}
		if opts.MaxRecords > 0 {
			query = query.MaxRecords(opts.MaxRecords)
		}
		if offset != "" {
			query = query.WithOffset(offset)
		}

		page, err := query.Do()
		if err != nil {
			return nil, fmt.Errorf("airtable: unable to list records: %w", err)
		}
		for _, r := range page.Records {
			records = append(records, fromAirtable(r))
		}
		offset = page.Offset
		if offset == "" {
			return records, nil
		}
	}
}

func fromAirtable(r *airtable.Record) models.Record {
	return models.Record{
		ID:          r.ID,
		CreatedTime: r.CreatedTime,
		Fields:      r.Fields,
	}
}
