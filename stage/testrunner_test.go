package stage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tap", "x": 20, "y": 28},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 20, "fromY": 28, "toX": 300, "toY": 28, "frames": 5},
			{"action": "expect", "state": "idle", "locked": true}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[2].ToX != 300 || runner.steps[2].Frames != 5 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Locked == nil || !*runner.steps[3].Locked {
		t.Error("step 3 locked not parsed")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunScriptConfirmAndReset(t *testing.T) {
	s := newTestScene(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "text", "text": "Slide to pay"},
		{"action": "drag", "fromX": 20, "fromY": 28, "toX": 300, "toY": 28, "frames": 8},
		{"action": "expect", "state": "idle", "locked": true, "scene": "loading"},
		{"action": "drag", "fromX": 20, "fromY": 28, "toX": 300, "toY": 28, "frames": 4},
		{"action": "expect", "locked": true},
		{"action": "reset"},
		{"action": "wait", "frames": 30},
		{"action": "expect", "state": "idle", "locked": false, "scene": "idle"},
		{"action": "disable"},
		{"action": "tap", "x": 20, "y": 28},
		{"action": "expect", "state": "disabled"},
		{"action": "enable"},
		{"action": "loading"},
		{"action": "expect", "locked": true}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	if err := s.RunScript(500); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
	if s.Button().Text() != "Slide to pay" {
		t.Errorf("text = %q", s.Button().Text())
	}
}

func TestRunScriptReportsFailedExpectations(t *testing.T) {
	s := newTestScene(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 20, "fromY": 28, "toX": 100, "toY": 28, "frames": 4},
		{"action": "expect", "locked": true}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	err = s.RunScript(100)
	if err == nil || !strings.Contains(err.Error(), "locked = false, want true") {
		t.Fatalf("err = %v, want failed expectation", err)
	}
}

func TestRunScriptWithoutRunner(t *testing.T) {
	s := newTestScene(t)
	if err := s.RunScript(10); err == nil {
		t.Error("expected error without a runner")
	}
}

func TestRunScriptFrameLimit(t *testing.T) {
	s := newTestScene(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	if err := s.RunScript(10); err == nil {
		t.Error("expected frame limit error")
	}
}

func TestLoadTestScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "cancel"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTestScriptFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTestScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
