package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Qualification represents how well a lead fits the offer.
// NotQualified always sorts after the numbered levels.
type Qualification int

const (
	QualificationLevel1       Qualification = 0
	QualificationLevel2       Qualification = 1
	QualificationLevel3       Qualification = 2
	QualificationNotQualified Qualification = 3
)

var qualificationNames = []string{"1", "2", "3", "NoCalif"}

var qualificationAliases = map[string]int{
	"Level1":       int(QualificationLevel1),
	"Level2":       int(QualificationLevel2),
	"Level3":       int(QualificationLevel3),
	"NotQualified": int(QualificationNotQualified),
	"NC":           int(QualificationNotQualified),
}

// Qualifications lists every level in canonical display order
func Qualifications() []Qualification {
	return []Qualification{
		QualificationLevel1,
		QualificationLevel2,
		QualificationLevel3,
		QualificationNotQualified,
	}
}

func (q Qualification) String() string {
	return nameOf(qualificationNames, int(q))
}

func (q Qualification) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalJSON only accepts names; the numbered levels are themselves strings
// on the wire, so integer codes would be ambiguous.
func (q *Qualification) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &InvalidValueError{Enum: "qualification", Value: string(data)}
	}
	i, err := lookupName(str, "qualification", qualificationNames, qualificationAliases)
	if err != nil {
		return err
	}
	*q = Qualification(i)
	return nil
}

func (q Qualification) Value() (driver.Value, error) {
	return int64(q), nil
}

func (q *Qualification) Scan(value interface{}) error {
	i, err := scanCode(value, "qualification", len(qualificationNames))
	if err != nil {
		return err
	}
	*q = Qualification(i)
	return nil
}
