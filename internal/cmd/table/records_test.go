package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/figurines/pkg/collection"
)

func TestRecordsToTableData(t *testing.T) {
	records := []*collection.Record{
		{ID: 7, Name: "Aragorn", FullImage: "images/full/a.png", Thumbnail: "images/thumbnails/a.png",
			Tags: []string{"ranger", "king"}, ModifiedAt: time.Date(2024, 3, 1, 15, 4, 0, 0, time.Local)},
		{ID: 9, Name: "Sam", Tags: []string{}},
	}

	data := RecordsToTableData(records, false)
	assert.Equal(t, []string{"ID", "NAME", "TAGS", "MODIFIED"}, data.Headers)
	assert.Equal(t, []string{"7", "Aragorn", "ranger, king", "Mar 1, 2024 at 3:04pm"}, data.Rows[0])
	assert.Equal(t, "-", data.Rows[1][2])
	assert.Len(t, data.ColumnAlignment, 4)

	wide := RecordsToTableData(records, true)
	assert.Len(t, wide.Headers, 6)
	assert.Equal(t, "images/thumbnails/a.png", wide.Rows[0][5])
}

func TestTagsToTableData(t *testing.T) {
	data := TagsToTableData([]string{"elf", "dwarf"}, map[string]int{"elf": 2, "dwarf": 1})
	assert.Equal(t, [][]string{{"elf", "2"}, {"dwarf", "1"}}, data.Rows)
}

func TestRecordDetails(t *testing.T) {
	data := RecordDetails(&collection.Record{ID: 1, Name: "Pippin"})
	assert.Equal(t, []string{"Name", "Pippin"}, data.Rows[1])
	assert.Equal(t, []string{"Tags", "-"}, data.Rows[2])
}
