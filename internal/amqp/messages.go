package amqp

import (
	"encoding/json"
	"time"

	"expensetracker/internal/core"
)

// ExpenseCreatedMessage announces a newly stored expense. It carries the
// full row so consumers can verify it against the store.
type ExpenseCreatedMessage struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Note        string    `json:"note"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewExpenseCreatedMessage(e core.Expense) *ExpenseCreatedMessage {
	return &ExpenseCreatedMessage{
		ID:          e.ID,
		Date:        e.Date,
		Amount:      e.Amount,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Note:        e.Note,
		Timestamp:   time.Now(),
	}
}

// Expense returns the expense row described by the message.
func (m *ExpenseCreatedMessage) Expense() core.Expense {
	return core.Expense{
		ID:          m.ID,
		Date:        m.Date,
		Amount:      m.Amount,
		Category:    m.Category,
		Subcategory: m.Subcategory,
		Note:        m.Note,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseCreatedMessageFromJSON creates a message from JSON bytes
func ExpenseCreatedMessageFromJSON(data []byte) (*ExpenseCreatedMessage, error) {
	var msg ExpenseCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
