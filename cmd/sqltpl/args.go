package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqltpl/query"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// parseArgs decodes a JSON array of arguments. Objects keep their key order,
// integral numbers become int64 and the skip token becomes the skip marker.
func parseArgs(data, skipToken string) ([]any, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("args must be a JSON array: %w", err)
	}

	out := make([]any, len(raw))
	for i, r := range raw {
		v, err := decodeArg(r, skipToken)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func decodeArg(raw json.RawMessage, skipToken string) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '{':
		om := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(trimmed, om); err != nil {
			return nil, err
		}
		a := query.NewAssoc()
		for p := om.Oldest(); p != nil; p = p.Next() {
			v, err := decodeArg(p.Value, skipToken)
			if err != nil {
				return nil, err
			}
			a.Set(p.Key, v)
		}
		return a, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := decodeArg(item, skipToken)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		return x.Float64()
	case string:
		if skipToken != "" && x == skipToken {
			return query.Skip(), nil
		}
	}
	return v, nil
}
