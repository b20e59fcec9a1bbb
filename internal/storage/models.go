package storage

type Expense struct {
	ID          int64
	Date        string
	Amount      float64
	Category    string
	Subcategory string
	Note        string
}
