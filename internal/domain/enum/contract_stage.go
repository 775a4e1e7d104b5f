package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ContractStage represents how far a contract has progressed. Stages are
// ordered; payments only ever move a contract forward (high-water mark).
type ContractStage int

const (
	ContractStageNew           ContractStage = 0
	ContractStageManufacturing ContractStage = 1
	ContractStageCompleted     ContractStage = 2
	ContractStageDelivering    ContractStage = 3
	ContractStageDelivered     ContractStage = 4
)

func (s ContractStage) String() string {
	names := [...]string{"new", "manufacturing", "completed", "delivering", "delivered"}
	if int(s) < 0 || int(s) >= len(names) {
		return "new"
	}
	return names[s]
}

func (s ContractStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ContractStage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ContractStage(i)
		return nil
	}
	switch str {
	case "manufacturing":
		*s = ContractStageManufacturing
	case "completed":
		*s = ContractStageCompleted
	case "delivering":
		*s = ContractStageDelivering
	case "delivered":
		*s = ContractStageDelivered
	default:
		*s = ContractStageNew
	}
	return nil
}

func (s ContractStage) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ContractStage) Scan(value interface{}) error {
	if value == nil {
		*s = ContractStageNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ContractStage(v)
	case int:
		*s = ContractStage(v)
	}
	return nil
}
