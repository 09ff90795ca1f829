package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/uyouii/ascii-boxplot/common"
)

const (
	defaultJSONKey   = "key"
	defaultJSONValue = "value"
)

type record struct {
	key   string
	value float64
}

func (r record) Key() string    { return r.key }
func (r record) Value() float64 { return r.value }

func readCSV(in io.Reader, header bool, keySel, valueSel string) ([]record, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %v: %w", err, common.ErrorInvalidInput)
	}

	var names []string
	if header && len(rows) > 0 {
		names, rows = rows[0], rows[1:]
	}
	keyIdx, err := columnIndex(names, keySel, 0)
	if err != nil {
		return nil, err
	}
	valueIdx, err := columnIndex(names, valueSel, 1)
	if err != nil {
		return nil, err
	}

	res := make([]record, 0, len(rows))
	for i, row := range rows {
		if keyIdx >= len(row) || valueIdx >= len(row) {
			return nil, fmt.Errorf("csv row %d has %d fields: %w", i+1, len(row), common.ErrorInvalidInput)
		}
		v, err := parseValue(row[valueIdx])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		res = append(res, record{key: row[keyIdx], value: v})
	}
	return res, nil
}

// columnIndex resolves a column given by 0-based index or header name.
func columnIndex(names []string, sel string, def int) (int, error) {
	if sel == "" {
		return def, nil
	}
	if idx, err := strconv.Atoi(sel); err == nil && idx >= 0 {
		return idx, nil
	}
	for i, name := range names {
		if strings.TrimSpace(name) == sel {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no csv column %q: %w", sel, common.ErrorInvalidOption)
}

func readJSON(in io.Reader, keyPath, valuePath string) ([]record, error) {
	if keyPath == "" {
		keyPath = defaultJSONKey
	}
	if valuePath == "" {
		valuePath = defaultJSONValue
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	res := []record{}
	var parseErr error
	each := func(doc gjson.Result) bool {
		rec, err := jsonRecord(doc, keyPath, valuePath)
		if err != nil {
			parseErr = fmt.Errorf("json record %d: %w", len(res)+1, err)
			return false
		}
		res = append(res, rec)
		return true
	}

	if bytes.HasPrefix(data, []byte("[")) {
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("malformed json array: %w", common.ErrorInvalidInput)
		}
		gjson.ParseBytes(data).ForEach(func(_, doc gjson.Result) bool {
			return each(doc)
		})
	} else {
		gjson.ForEachLine(string(data), each)
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return res, nil
}

func jsonRecord(doc gjson.Result, keyPath, valuePath string) (record, error) {
	if !doc.IsObject() {
		return record{}, fmt.Errorf("not an object: %w", common.ErrorInvalidInput)
	}
	key := doc.Get(keyPath)
	if !key.Exists() {
		return record{}, fmt.Errorf("missing %q: %w", keyPath, common.ErrorInvalidInput)
	}
	val := doc.Get(valuePath)
	switch val.Type {
	case gjson.Number:
		return record{key: key.String(), value: val.Float()}, nil
	case gjson.String:
		v, err := parseValue(val.Str)
		if err != nil {
			return record{}, fmt.Errorf("%q: %w", valuePath, err)
		}
		return record{key: key.String(), value: v}, nil
	}
	return record{}, fmt.Errorf("%q is not a number: %w", valuePath, common.ErrorInvalidInput)
}

// parseValue reads a finite number; NaN and infinities are rejected.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, common.ErrorInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %q is not finite: %w", s, common.ErrorInvalidInput)
	}
	return v, nil
}
