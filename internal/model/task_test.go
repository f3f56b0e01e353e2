package model

import (
	"encoding/json"
	"testing"
)

func TestTask_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input      string
		expectedID string
		text       string
	}{
		{`{"id":"0190f1c2-aaaa-7bbb-8ccc-000000000001","t":"Buy milk"}`, "0190f1c2-aaaa-7bbb-8ccc-000000000001", "Buy milk"},
		{`{"id":1589112345678,"t":"Legacy"}`, "1589112345678", "Legacy"},
		{`{"t":"No id"}`, "", "No id"},
		{`{"id":null,"t":"Null id"}`, "", "Null id"},
	}

	for _, test := range tests {
		var task Task
		if err := json.Unmarshal([]byte(test.input), &task); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", test.input, err)
		}
		if task.ID != test.expectedID {
			t.Errorf("Unmarshal(%s) ID = '%s', expected '%s'", test.input, task.ID, test.expectedID)
		}
		if task.Text != test.text {
			t.Errorf("Unmarshal(%s) Text = '%s', expected '%s'", test.input, task.Text, test.text)
		}
	}
}

func TestTask_UnmarshalJSON_InvalidID(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":true,"t":"x"}`), &task); err == nil {
		t.Error("Expected error for boolean id, got nil")
	}
}

func TestTask_MarshalJSON(t *testing.T) {
	task := Task{ID: "abc", Text: "Walk the dog"}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	expected := `{"id":"abc","t":"Walk the dog"}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, expected %s", data, expected)
	}
}

func TestTask_GetDisplayText(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Buy milk", "Buy milk"},
		{"  padded  ", "padded"},
		{"two\nlines", "two lines"},
		{"tab\there", "tab here"},
		{"crlf\r\nline", "crlf line"},
	}

	for _, test := range tests {
		task := &Task{Text: test.text}
		if got := task.GetDisplayText(); got != test.expected {
			t.Errorf("GetDisplayText() with text=%q = %q, expected %q", test.text, got, test.expected)
		}
	}
}

func TestCompareIDs(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"1", "2", -1},
		{"9", "10", -1},
		{"100", "99", 1},
		{"007", "7", 0},
		{"1589112345678", "0190f1c2-aaaa", -1},
		{"0190f1c2-aaaa", "1589112345678", 1},
		{"0190f1c2-aaaa", "0190f1c2-bbbb", -1},
		{"same", "same", 0},
	}

	for _, test := range tests {
		if got := CompareIDs(test.a, test.b); got != test.expected {
			t.Errorf("CompareIDs(%q, %q) = %d, expected %d", test.a, test.b, got, test.expected)
		}
	}
}

func TestIsLegacyID(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{"1589112345678", true},
		{"", false},
		{"12a", false},
		{"0190f1c2-aaaa-7bbb-8ccc-000000000001", false},
	}

	for _, test := range tests {
		if got := IsLegacyID(test.id); got != test.expected {
			t.Errorf("IsLegacyID(%q) = %v, expected %v", test.id, got, test.expected)
		}
	}
}
