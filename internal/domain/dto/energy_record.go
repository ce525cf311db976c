package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ougirez/energy-dashboard/internal/domain"
)

const (
	FieldTimestamp      = "timestamp"
	FieldElectricityKwh = "electricity_kwh"
	FieldWaterTons      = "water_tons"
	FieldGasM3          = "gas_m3"
	FieldCO2Tons        = "co2_tons"
)

var MetricFields = []string{FieldElectricityKwh, FieldWaterTons, FieldGasM3, FieldCO2Tons}

// canonicalFields is keyed by SquashKey output.
var canonicalFields = map[string]string{
	"timestamp":      FieldTimestamp,
	"electricitykwh": FieldElectricityKwh,
	"electricity":    FieldElectricityKwh,
	"kwh":            FieldElectricityKwh,
	"watertons":      FieldWaterTons,
	"water":          FieldWaterTons,
	"gasm3":          FieldGasM3,
	"gas":            FieldGasM3,
	"co2tons":        FieldCO2Tons,
	"co2":            FieldCO2Tons,
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %q field", e.Field)
}

type InvalidValueError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %v: %s", e.Field, e.Value, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// SquashKey lowercases a column name and drops everything that is not a
// letter or digit, so "Electricity kWh", "electricityKwh" and
// "ELECTRICITY_KWH" all compare equal.
func SquashKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// CanonicalField maps a raw column name to one of the Field* names.
func CanonicalField(key string) (string, bool) {
	f, ok := canonicalFields[SquashKey(key)]
	return f, ok
}

type EnergyRecord map[string]interface{}

// Normalize rewrites known columns to their canonical names. Unknown
// columns are kept lowercased. When several columns map onto the same
// field, the one spelled like the canonical name wins, then the
// lexicographically smallest raw key.
func Normalize(raw map[string]interface{}) EnergyRecord {
	rec := make(EnergyRecord, len(raw))
	chosen := make(map[string]string, len(MetricFields)+1)
	for k, v := range raw {
		f, ok := CanonicalField(k)
		if !ok {
			rec[strings.ToLower(k)] = v
			continue
		}
		if prev, seen := chosen[f]; seen && !preferKey(f, k, prev) {
			continue
		}
		chosen[f] = k
		rec[f] = v
	}
	return rec
}

func preferKey(field, candidate, current string) bool {
	canonical := SquashKey(field)
	candExact := SquashKey(candidate) == canonical
	curExact := SquashKey(current) == canonical
	if candExact != curExact {
		return candExact
	}
	return candidate < current
}

func (r EnergyRecord) Has(field string) bool {
	_, ok := r[field]
	return ok
}

func (r EnergyRecord) ToSample() (domain.EnergySample, error) {
	var sample domain.EnergySample

	rawTS, ok := r[FieldTimestamp]
	if !ok {
		return sample, &MissingFieldError{Field: FieldTimestamp}
	}
	ts, err := parseTimestamp(rawTS)
	if err != nil {
		return sample, &InvalidValueError{Field: FieldTimestamp, Value: rawTS, Err: err}
	}
	sample.Timestamp = ts

	targets := map[string]*float64{
		FieldElectricityKwh: &sample.ElectricityKwh,
		FieldWaterTons:      &sample.WaterTons,
		FieldGasM3:          &sample.GasM3,
		FieldCO2Tons:        &sample.CO2Tons,
	}
	for _, field := range MetricFields {
		raw, ok := r[field]
		if !ok {
			return sample, &MissingFieldError{Field: field}
		}
		val, err := parseNumber(raw)
		if err != nil {
			return sample, &InvalidValueError{Field: field, Value: raw, Err: err}
		}
		*targets[field] = val
	}

	return sample, nil
}

func parseTimestamp(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised time format")
	case float64:
		// epoch milliseconds, the default of most JSON exporters
		return time.UnixMilli(int64(t)).UTC(), nil
	case int64:
		return time.UnixMilli(t).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", v)
	}
}

func parseNumber(v interface{}) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	if f < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return f, nil
}
