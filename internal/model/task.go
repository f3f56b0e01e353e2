package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Task is a single to-do entry. Text is serialized under the short "t" key
// so blobs written by earlier releases of the app load unchanged.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"t"`
}

// UnmarshalJSON accepts both string ids and the numeric timestamp ids used
// by earlier releases. Numeric ids are kept as their decimal text.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Text string          `json:"t"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := parseID(raw.ID)
	if err != nil {
		return err
	}

	t.ID = id
	t.Text = raw.Text
	return nil
}

func parseID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid task id %s: %w", raw, err)
	}
	return n.String(), nil
}

// GetDisplayText returns the text flattened to a single line for list rows
func (t *Task) GetDisplayText() string {
	text := strings.ReplaceAll(t.Text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}

// IsLegacyID reports whether id is a numeric timestamp id from an earlier release
func IsLegacyID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CompareIDs orders ids for display. Legacy numeric ids come first in
// numeric order, then string ids in lexical order. Generated ids are
// UUIDv7, whose lexical order is creation order.
func CompareIDs(a, b string) int {
	la, lb := IsLegacyID(a), IsLegacyID(b)
	switch {
	case la && !lb:
		return -1
	case !la && lb:
		return 1
	case la && lb:
		a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}
