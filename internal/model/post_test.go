package model

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestWriteCSV(t *testing.T) {
	table := ResultTable{
		{
			Title:    "Great pay",
			PostBody: "The pay here is solid",
			Comments: [NumComments]string{"agreed", "same here", "", "", ""},
		},
		{
			Title:    "Cafeteria food",
			PostBody: "Lunch options, honestly, could be better",
		},
	}

	var sb strings.Builder
	err := WriteCSV(&sb, table)
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "Title,Post Body,Comment 1,Comment 2,Comment 3,Comment 4,Comment 5", lines[0])
	assert.Equal(t, "Great pay,The pay here is solid,agreed,same here,,,", lines[1])

	// Fields containing commas get quoted by the writer.
	if !strings.Contains(lines[2], `"Lunch options, honestly, could be better"`) {
		t.Errorf("expected quoted field, got %q", lines[2])
	}
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var sb strings.Builder
	err := WriteCSV(&sb, ResultTable{})
	assert.Equal(t, nil, err)

	// Header only.
	assert.Equal(t, "Title,Post Body,Comment 1,Comment 2,Comment 3,Comment 4,Comment 5", strings.TrimSpace(sb.String()))
}
