package enum

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Installment identifies one of the three fixed contract payment milestones
type Installment string

const (
	InstallmentDeposit   Installment = "deposit"
	InstallmentOperation Installment = "operation"
	InstallmentDelivery  Installment = "delivery"
)

// Installments lists the milestones in canonical collection order
func Installments() []Installment {
	return []Installment{InstallmentDeposit, InstallmentOperation, InstallmentDelivery}
}

// IsValid reports whether the value is one of the three milestone keys
func (i Installment) IsValid() bool {
	switch i {
	case InstallmentDeposit, InstallmentOperation, InstallmentDelivery:
		return true
	}
	return false
}

// Share returns the milestone's share of the contract value:
// deposit 60%, operation 30%, delivery 10%.
func (i Installment) Share() decimal.Decimal {
	switch i {
	case InstallmentDeposit:
		return decimal.NewFromFloat(0.60)
	case InstallmentOperation:
		return decimal.NewFromFloat(0.30)
	case InstallmentDelivery:
		return decimal.NewFromFloat(0.10)
	}
	return decimal.Zero
}

// Stage returns the contract stage reached when the milestone is collected
func (i Installment) Stage() ContractStage {
	switch i {
	case InstallmentDeposit:
		return ContractStageManufacturing
	case InstallmentOperation:
		return ContractStageCompleted
	case InstallmentDelivery:
		return ContractStageDelivering
	}
	return ContractStageNew
}

// Label returns the customer-facing Arabic name of the milestone
func (i Installment) Label() string {
	switch i {
	case InstallmentDeposit:
		return "دفعة التعاقد"
	case InstallmentOperation:
		return "دفعة التشغيل"
	case InstallmentDelivery:
		return "دفعة الاستلام"
	}
	return string(i)
}

func (i Installment) String() string {
	return string(i)
}

func (i Installment) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(i))
}

func (i *Installment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*i = Installment(str)
	return nil
}

func (i Installment) Value() (driver.Value, error) {
	return string(i), nil
}

func (i *Installment) Scan(value interface{}) error {
	if value == nil {
		*i = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*i = Installment(v)
	case []byte:
		*i = Installment(v)
	}
	return nil
}
