package stickyscroll

import (
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "wheel", "x": 200, "y": 300, "dy": -1},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-wheel"}
		]
	}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Errorf("got %d steps, want 3", len(runner.steps))
	}
	if runner.Done() {
		t.Error("fresh runner should not be done")
	}
}

func TestLoadTestScriptInvalidJSON(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{nope`)); err == nil {
		t.Error("malformed JSON should error")
	}
}

func TestLoadTestScriptEmpty(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("a script with no steps should error")
	}
}

func TestRunnerWheelStep(t *testing.T) {
	v := newTestView()
	runner, err := LoadTestScript([]byte(`{
		"steps": [{"action": "wheel", "x": 200, "y": 300, "dy": -1}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)

	runner.step(v)
	if len(v.injectQueue) != 1 {
		t.Fatalf("queue length = %d, want 1", len(v.injectQueue))
	}
	v.processInjected(testDT)
	if v.ScrollOffset().Y != 40 {
		t.Errorf("offset = %v, want 40", v.ScrollOffset().Y)
	}

	runner.step(v)
	if !runner.Done() {
		t.Error("runner should finish after the queue drains")
	}
}

func TestRunnerWaitsForInjectionsToDrain(t *testing.T) {
	v := newTestView()
	runner, err := LoadTestScript([]byte(`{
		"steps": [
			{"action": "drag", "fromX": 200, "fromY": 400, "toX": 200, "toY": 300, "frames": 4},
			{"action": "click", "x": 100, "y": 100}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)

	runner.step(v)
	if len(v.injectQueue) != 4 {
		t.Fatalf("queue length = %d, want 4", len(v.injectQueue))
	}

	// The runner holds the click back until the drag drains.
	runner.step(v)
	if len(v.injectQueue) != 4 {
		t.Error("runner must not advance while injections are pending")
	}
	for v.processInjected(testDT) {
	}

	runner.step(v)
	if len(v.injectQueue) != 2 {
		t.Errorf("queue length = %d, want 2 (the click)", len(v.injectQueue))
	}
}

func TestRunnerWaitCountsFrames(t *testing.T) {
	v := newTestView()
	runner, err := LoadTestScript([]byte(`{
		"steps": [{"action": "wait", "frames": 3}]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(v) // executes the wait, counts as frame 1
	runner.step(v) // frame 2
	if runner.Done() {
		t.Error("runner finished too early")
	}
	runner.step(v) // frame 3
	runner.step(v)
	if !runner.Done() {
		t.Error("runner should be done after the wait elapses")
	}
}

func TestRunnerScreenshotStep(t *testing.T) {
	v := newTestView()
	runner, err := LoadTestScript([]byte(`{
		"steps": [{"action": "screenshot", "label": "start"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(v)
	if len(v.screenshotQueue) != 1 || v.screenshotQueue[0] != "start" {
		t.Errorf("screenshot queue = %v, want [start]", v.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("single-step script should finish immediately")
	}
}
