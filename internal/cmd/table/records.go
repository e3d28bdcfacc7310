// Package table converts collection records into rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/constants"
)

// Align represents column alignment.
type Align int

// Alignment values. AlignDefault leaves the column to the renderer.
const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Data is a rendered table: headers, rows and optional per-column alignment.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// RecordsToTableData converts records to table data. Wide adds the stored
// image paths.
func RecordsToTableData(records []*collection.Record, wide bool) Data {
	headers := []string{"ID", "NAME", "TAGS", "MODIFIED"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "IMAGE", "THUMBNAIL")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			formatTags(r.Tags),
			r.ModifiedAt.Local().Format(constants.TimeFormatHuman),
		}
		if wide {
			row = append(row, r.FullImage, r.Thumbnail)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RecordDetails renders a single record as a property table.
func RecordDetails(r *collection.Record) Data {
	return Data{
		Headers: []string{"PROPERTY", "VALUE"},
		Rows: [][]string{
			{"ID", strconv.Itoa(r.ID)},
			{"Name", r.Name},
			{"Tags", formatTags(r.Tags)},
			{"Image", r.FullImage},
			{"Thumbnail", r.Thumbnail},
			{"Modified", r.ModifiedAt.Local().Format(constants.TimeFormatHuman)},
		},
	}
}

// TagsToTableData renders the tag vocabulary with usage counts.
func TagsToTableData(tags []string, counts map[string]int) Data {
	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{tag, strconv.Itoa(counts[tag])})
	}
	return Data{
		Headers:         []string{"TAG", "RECORDS"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
