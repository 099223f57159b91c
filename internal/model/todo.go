package model

// Todo is a single task item. Field names match the persisted JSON document
// exactly; the store file is a plain array of these.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPatch carries a partial update. A nil field means "leave unchanged";
// a non-nil field is applied even when it holds the zero value.
type TodoPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}
