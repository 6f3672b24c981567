package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// BulkDeleteRequest is the body of POST /api/products/bulk-delete
type BulkDeleteRequest struct {
	ProductIDs IDList `json:"product_ids"`
}

// IDList is a list of remote ids. The store accepts ids as JSON strings or
// numbers; both decode to their string form.
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()

		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return err
		}
		switch id := v.(type) {
		case string:
			ids = append(ids, id)
		case json.Number:
			ids = append(ids, id.String())
		default:
			return &json.UnmarshalTypeError{Value: jsonKind(v), Type: reflect.TypeOf("")}
		}
	}
	*l = ids
	return nil
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case []interface{}:
		return "array"
	default:
		return "object"
	}
}

// BulkItemResult is the outcome of one unit of a bulk operation
type BulkItemResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkDeleteResult aggregates the outcomes of a bulk delete. Results are in
// request order.
type BulkDeleteResult struct {
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Results    []BulkItemResult `json:"results"`
}

// Message summarizes the counts for the envelope message
func (r BulkDeleteResult) Message() string {
	msg := fmt.Sprintf("%d products deleted successfully", r.Successful)
	if r.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", r.Failed)
	}
	return msg
}
