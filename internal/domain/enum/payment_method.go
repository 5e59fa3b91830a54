package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a closed sale is being paid
type PaymentMethod int

const (
	PaymentMethodNone         PaymentMethod = 0
	PaymentMethodCash         PaymentMethod = 1
	PaymentMethodInstallments PaymentMethod = 2
)

var paymentMethodNames = []string{"None", "Cash", "Installments"}

var paymentMethodAliases = map[string]int{
	"No":      int(PaymentMethodNone),
	"Contado": int(PaymentMethodCash),
	"Cuotas":  int(PaymentMethodInstallments),
}

func (p PaymentMethod) String() string {
	return nameOf(paymentMethodNames, int(p))
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	i, err := decodeName(data, "payment_method", paymentMethodNames, paymentMethodAliases)
	if err != nil {
		return err
	}
	*p = PaymentMethod(i)
	return nil
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentMethodNone
		return nil
	}
	i, err := scanCode(value, "payment_method", len(paymentMethodNames))
	if err != nil {
		return err
	}
	*p = PaymentMethod(i)
	return nil
}
