package models

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
)

// EncodeHabits serialises the whole collection as one JSON document.
// Completion keys are emitted in sorted order so equal collections encode to equal bytes.
func EncodeHabits(habits []Habit) ([]byte, error) {
	if habits == nil {
		habits = []Habit{}
	}
	data, err := json.Marshal(habits, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("encoding habits: %w", err)
	}
	return data, nil
}

// DecodeHabits parses a document written by EncodeHabits.
// Empty input and a JSON null both decode to an empty collection.
func DecodeHabits(data []byte) ([]Habit, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Habit{}, nil
	}

	var habits []Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("decoding habits: %w", err)
	}

	if habits == nil {
		habits = []Habit{}
	}
	for i := range habits {
		if habits[i].Completions == nil {
			habits[i].Completions = map[string]bool{}
		}
	}
	return habits, nil
}
