// internal/models/common.go
package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Base model with common fields. Primary keys are assigned by the
// application-side ID generator, never by a database sequence.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Int64List is a JSON-array column of record IDs. The stored arrays
// come from untrusted admin payloads and may contain numbers or
// numeric strings; any other element fails the read of the whole row.
// The IDs are plain values, not enforced foreign keys; resolving
// them (and dropping the dangling ones) happens at read time.
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]int64{})
	}
	return json.Marshal([]int64(l))
}

func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Int64List", value)
	}

	return l.decode(data)
}

// UnmarshalJSON accepts both numbers and numeric strings, matching
// what clients historically sent for formIds/colorIds.
func (l *Int64List) UnmarshalJSON(data []byte) error {
	return l.decode(data)
}

func (l *Int64List) decode(data []byte) error {
	var raw []interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("malformed id list: %w", err)
	}

	ids := make(Int64List, 0, len(raw))
	for _, el := range raw {
		var s string
		switch v := el.(type) {
		case json.Number:
			s = v.String()
		case string:
			s = v
		default:
			return fmt.Errorf("malformed id list element %v", el)
		}

		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed id %q in id list: %w", s, err)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}

// LocalizedText is a bilingual name/description pair embedded into
// the owning row (ru_name_*, en_name_* columns).
type LocalizedText struct {
	Name string `json:"name" gorm:"column:name;size:255"`
	Desc string `json:"desc" gorm:"column:desc;size:1024"`
}
