package model

import (
	"encoding/csv"
	"io"
)

// NumComments is how many comment fields one post carries.
const NumComments = 5

// CSVHeader is the fixed column order for exported content.
var CSVHeader = []string{"Title", "Post Body", "Comment 1", "Comment 2", "Comment 3", "Comment 4", "Comment 5"}

// Record is one fully parsed post. Missing trailing comments are empty
// strings; a Record is never constructed partially.
type Record struct {
	Title    string
	PostBody string
	Comments [NumComments]string
}

// ResultTable holds all successfully parsed Records in production order.
type ResultTable []Record

// WriteCSV serializes the table with the fixed header, one row per Record.
func WriteCSV(w io.Writer, table ResultTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range table {
		row := append([]string{r.Title, r.PostBody}, r.Comments[:]...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
