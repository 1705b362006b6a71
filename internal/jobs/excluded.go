package jobs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"
)

type ExcludedRecords struct {
	Items []*ExcludedRecord
}

type ExcludedRecord struct {
	ID         int       `json:"id"`
	Title      string    `json:"title,omitempty"`
	Company    string    `json:"company,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	ExcludedAt time.Time `json:"excluded_at"`
}

// ToExcluded builds exclude entries for records.
func ToExcluded[R Record](records []R, reason string) *ExcludedRecords {
	excluded := &ExcludedRecords{}
	now := time.Now().UTC()
	for _, r := range records {
		excluded.Items = append(excluded.Items, &ExcludedRecord{
			ID:         r.RecordID(),
			Title:      r.StringField(FieldTitle),
			Company:    r.StringField(FieldCompany),
			Reason:     reason,
			ExcludedAt: now,
		})
	}
	return excluded
}

// LoadExcluded reads an exclude file. A missing or empty file yields no entries.
func LoadExcluded(path string) (*ExcludedRecords, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedRecords{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedRecords{}, nil
	}

	var excluded ExcludedRecords
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedRecords) Append(s *ExcludedRecords) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedRecords) IDs() []int {
	ids := make([]int, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (e *ExcludedRecords) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
