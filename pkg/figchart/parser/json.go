package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// ParseJSON decodes either a top-level array of records or an object whose
// "data" field is that array. Headers are the first record's keys in
// document order; later records missing a key read as empty cells.
func ParseJSON(data []byte) (*models.Dataset, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, newParseError(FormatJSON, "decode text", err)
	}
	body := bytes.TrimSpace([]byte(text))

	var records []json.RawMessage
	switch {
	case bytes.HasPrefix(body, []byte("[")):
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, newParseError(FormatJSON, "malformed content", err)
		}
	case bytes.HasPrefix(body, []byte("{")):
		var envelope struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, newParseError(FormatJSON, "malformed content", err)
		}
		if envelope.Data == nil {
			return nil, newParseError(FormatJSON, `expected an array or an object with a "data" array`, nil)
		}
		records = envelope.Data
	default:
		return nil, newParseError(FormatJSON, `expected an array or an object with a "data" array`, nil)
	}

	if len(records) == 0 {
		return nil, newParseError(FormatJSON, errTooShort, nil)
	}

	headers, err := objectKeys(records[0])
	if err != nil {
		return nil, newParseError(FormatJSON, "first record", err)
	}
	if len(headers) == 0 {
		return nil, newParseError(FormatJSON, errTooShort, nil)
	}

	rows := make([][]interface{}, 0, len(records))
	for i, raw := range records {
		var rec map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&rec); err != nil {
			return nil, newParseError(FormatJSON, fmt.Sprintf("record %d", i), err)
		}
		row := make([]interface{}, len(headers))
		for j, h := range headers {
			row[j] = jsonCell(rec[h])
		}
		rows = append(rows, row)
	}
	return &models.Dataset{Headers: headers, Rows: rows}, nil
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("record is not an object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("unexpected token in object")
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func jsonCell(v interface{}) interface{} {
	switch x := v.(type) {
	case nil, bool:
		return x
	case string:
		if x == "" {
			return nil
		}
		return x
	case json.Number:
		return parseValue(x.String())
	default:
		// Nested arrays and objects are kept as their JSON text.
		b, err := json.Marshal(x)
		if err != nil {
			return nil
		}
		return string(b)
	}
}
