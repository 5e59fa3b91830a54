package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Confirmation is the tri-state used by whatsapp_confirmed and attended
type Confirmation int

const (
	ConfirmationPending Confirmation = 0
	ConfirmationYes     Confirmation = 1
	ConfirmationNo      Confirmation = 2
)

var confirmationNames = []string{"Pending", "Yes", "No"}

var confirmationAliases = map[string]int{
	"Pendiente": int(ConfirmationPending),
	"Si":        int(ConfirmationYes),
	"Sí":        int(ConfirmationYes),
}

func (c Confirmation) String() string {
	return nameOf(confirmationNames, int(c))
}

func (c Confirmation) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Confirmation) UnmarshalJSON(data []byte) error {
	i, err := decodeName(data, "confirmation", confirmationNames, confirmationAliases)
	if err != nil {
		return err
	}
	*c = Confirmation(i)
	return nil
}

func (c Confirmation) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *Confirmation) Scan(value interface{}) error {
	if value == nil {
		*c = ConfirmationPending
		return nil
	}
	i, err := scanCode(value, "confirmation", len(confirmationNames))
	if err != nil {
		return err
	}
	*c = Confirmation(i)
	return nil
}
