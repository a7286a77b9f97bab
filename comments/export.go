package comments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// commentID is an export id. Browser exports use millisecond timestamps,
// so numbers are kept digit for digit; null means "assign a new one".
type commentID string

func (id *commentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = commentID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("comment id %s: want string, number or null", data)
	}
	*id = commentID(n.String())
	return nil
}

// exported mirrors one entry of a "jraComments" export.
type exported struct {
	ID      commentID  `json:"id"`
	Name    string     `json:"name"`
	Text    string     `json:"text"`
	Date    time.Time  `json:"date"`
	Replies []exported `json:"replies"`
}

// ParseExport decodes a "jraComments" JSON export into threads ready for Import.
func ParseExport(r io.Reader) ([]Thread, error) {
	var in []exported
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode comments export: %w", err)
	}

	out := make([]Thread, len(in))
	for i, e := range in {
		out[i] = e.thread()
	}
	return out, nil
}

func (e exported) thread() Thread {
	t := Thread{
		ID:      string(e.ID),
		Name:    e.Name,
		Text:    e.Text,
		Date:    e.Date,
		Replies: make([]Thread, len(e.Replies)),
	}
	for i, r := range e.Replies {
		t.Replies[i] = r.thread()
	}
	return t
}
