package models

import (
	"encoding/json"
	"time"
)

// Migraine is one headache episode. Symptoms and triggers are free-form
// ordered string lists stored as JSON in text columns.
type Migraine struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"index;not null"` // FK → users.id
	StartTime  time.Time  `gorm:"index;not null"`
	EndTime    *time.Time
	Intensity  int    `gorm:"not null"` // 1-10
	Symptoms   string `gorm:"type:text"`
	Triggers   string `gorm:"type:text"`
	Medication string
	Notes      string `gorm:"type:text"`
}

func (Migraine) TableName() string {
	return "migraines"
}

// SetSymptoms serializes the ordered symptom list into the Symptoms column.
func (m *Migraine) SetSymptoms(symptoms []string) error {
	s, err := marshalList(symptoms)
	if err != nil {
		return err
	}
	m.Symptoms = s
	return nil
}

// SetTriggers serializes the ordered trigger list into the Triggers column.
func (m *Migraine) SetTriggers(triggers []string) error {
	s, err := marshalList(triggers)
	if err != nil {
		return err
	}
	m.Triggers = s
	return nil
}

// SymptomList parses the Symptoms column back into an ordered list.
// An empty column yields an empty list, never nil.
func (m *Migraine) SymptomList() ([]string, error) {
	return unmarshalList(m.Symptoms)
}

// TriggerList parses the Triggers column back into an ordered list.
func (m *Migraine) TriggerList() ([]string, error) {
	return unmarshalList(m.Triggers)
}

func marshalList(values []string) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalList(column string) ([]string, error) {
	if column == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(column), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
