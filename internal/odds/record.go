package odds

import "fmt"

// Record is one game's values, aligned 1:1 with the schema it was built for.
type Record struct {
	values []Value
}

// NewRecord copies values into a Record. It fails when the value count
// differs from the schema length.
func NewRecord(schema Schema, values []Value) (Record, error) {
	if len(values) != len(schema) {
		return Record{}, fmt.Errorf("%w: %d values for %d columns", ErrRecordLength, len(values), len(schema))
	}
	vs := make([]Value, len(values))
	copy(vs, values)
	return Record{values: vs}, nil
}

func (r Record) Len() int { return len(r.values) }

func (r Record) Value(i int) Value { return r.values[i] }

// RecordSet is a schema plus its records. It is not modified after
// assembly; Select and Rename return new sets.
type RecordSet struct {
	schema  Schema
	records []Record
}

// NewRecordSet validates every record against the schema.
func NewRecordSet(schema Schema, records []Record) (RecordSet, error) {
	for i, r := range records {
		if r.Len() != len(schema) {
			return RecordSet{}, fmt.Errorf("record %d: %w: %d values for %d columns", i, ErrRecordLength, r.Len(), len(schema))
		}
	}
	s := make(Schema, len(schema))
	copy(s, schema)
	rs := make([]Record, len(records))
	copy(rs, records)
	return RecordSet{schema: s, records: rs}, nil
}

func (rs RecordSet) Schema() Schema {
	s := make(Schema, len(rs.schema))
	copy(s, rs.schema)
	return s
}

func (rs RecordSet) Len() int { return len(rs.records) }

func (rs RecordSet) Record(i int) Record { return rs.records[i] }

// Select keeps the columns for which keep returns true, in schema order.
func (rs RecordSet) Select(keep func(Column) bool) RecordSet {
	var idx []int
	schema := make(Schema, 0, len(rs.schema))
	for i, c := range rs.schema {
		if keep(c) {
			idx = append(idx, i)
			schema = append(schema, c)
		}
	}
	records := make([]Record, len(rs.records))
	for n, r := range rs.records {
		vs := make([]Value, len(idx))
		for j, i := range idx {
			vs[j] = r.values[i]
		}
		records[n] = Record{values: vs}
	}
	return RecordSet{schema: schema, records: records}
}

// Rename rewrites column descriptors; values are shared.
func (rs RecordSet) Rename(fn func(Column) Column) RecordSet {
	schema := make(Schema, len(rs.schema))
	for i, c := range rs.schema {
		schema[i] = fn(c)
	}
	return RecordSet{schema: schema, records: rs.records}
}

// Flatten returns the delimited header and one row per record, with pair
// columns split into two adjacent fields.
func (rs RecordSet) Flatten() ([]string, [][]string) {
	header := rs.schema.Fields()
	rows := make([][]string, 0, len(rs.records))
	for _, r := range rs.records {
		row := make([]string, 0, len(header))
		for i, c := range rs.schema {
			row = append(row, r.values[i].fields(c.Kind)...)
		}
		rows = append(rows, row)
	}
	return header, rows
}

// Maps returns one field-name → value map per record, indexed by row.
func (rs RecordSet) Maps() []map[string]string {
	header, rows := rs.Flatten()
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		m := make(map[string]string, len(header))
		for j, f := range header {
			m[f] = row[j]
		}
		out[i] = m
	}
	return out
}
