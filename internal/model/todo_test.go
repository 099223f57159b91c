package model_test

import (
	"encoding/json"
	"testing"

	"github.com/singhdavide01/todo-api/internal/model"
)

func TestTodo_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(model.Todo{ID: 1, Title: "Buy milk", Completed: true})
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"id", "title", "completed"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q in %s", field, data)
		}
	}
	if len(raw) != 3 {
		t.Errorf("expected exactly 3 fields, got %d: %s", len(raw), data)
	}
}

func TestTodoPatch_IsEmpty(t *testing.T) {
	title := "x"
	completed := false

	tests := []struct {
		name  string
		patch model.TodoPatch
		want  bool
	}{
		{"zero patch", model.TodoPatch{}, true},
		{"title set", model.TodoPatch{Title: &title}, false},
		{"completed set to false", model.TodoPatch{Completed: &completed}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
