package core

// defaultCategories is advisory metadata shown to callers. Expenses may use
// any category name.
var defaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Education",
	"Bills",
	"Health",
	"Entertainment",
	"Other",
}

// Categories returns a copy of the suggested category names.
func Categories() []string {
	return append([]string(nil), defaultCategories...)
}
