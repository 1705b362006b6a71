package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/jobmatch/internal/apierr"
)

// Dump is the document written by the matching service client.
type Dump struct {
	Postings     []*Posting     `json:"postings,omitempty"`
	Resumes      []*Resume      `json:"resumes,omitempty"`
	Matches      []*Match       `json:"matches,omitempty"`
	Applications []*Application `json:"applications,omitempty"`
	// Error is set by the client when the service rejected a request.
	Error *DumpError `json:"error,omitempty"`
}

// DumpError is a failed response recorded in place of records.
type DumpError struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// Err returns the recorded failure classified by status, or nil.
func (d *Dump) Err() error {
	if d == nil || d.Error == nil {
		return nil
	}
	return apierr.FromStatus(d.Error.Status, d.Error.Message)
}

// Len returns the number of records of every kind.
func (d *Dump) Len() int {
	return len(d.Postings) + len(d.Resumes) + len(d.Matches) + len(d.Applications)
}

// LoadFile reads and validates a dump from path. An empty file is an empty dump.
func LoadFile(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &Dump{}, nil
	}

	if err := ValidateDump(data); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apierr.Decoding(fmt.Errorf("parse %s: %w", path, err))
	}

	return Decode(raw)
}

// Decode converts a generic JSON document into a Dump. Types are coerced
// where possible: ids sent as strings become ints, and scores sent as
// strings ("0.8", "80%") become numbers. A score that cannot be read is
// left unset rather than failing the whole dump.
func Decode(raw map[string]any) (*Dump, error) {
	var dump Dump

	cfg := &mapstructure.DecoderConfig{
		DecodeHook:       scoreHook,
		WeaklyTypedInput: true,
		Result:           &dump,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, apierr.Decoding(err)
	}

	return &dump, nil
}

var scoreType = reflect.TypeOf((*float64)(nil))

func scoreHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	raw, ok := data.(string)
	if to != scoreType || from.Kind() != reflect.String || !ok {
		return data, nil
	}

	value := strings.TrimSpace(raw)
	percent := strings.HasSuffix(value, "%")
	value = strings.TrimSpace(strings.TrimSuffix(value, "%"))

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, nil
	}
	if percent {
		f /= 100
	}
	return f, nil
}

// DumpToTmpFile writes records as indented JSON into a new temporary file.
func DumpToTmpFile[R any](records []R) (string, error) {
	file, err := os.CreateTemp("", "jobmatch_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return file.Name(), nil
}
