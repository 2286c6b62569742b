package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateHelpCommandTogglesPanel(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for help toggle")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateEnterEvaluatesExpression(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("2 + 3 * 4")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected eval error: %s", entry.output)
	}
	if entry.output != "20" {
		t.Fatalf("expected left-to-right result 20, got %q", entry.output)
	}
}

func TestUpdateBlankInputIsIgnored(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("   ")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 0 {
		t.Fatalf("blank input should not produce history entries")
	}
	if len(rm.cmdHistory) != 0 {
		t.Fatalf("blank input should not enter command history")
	}
}

func TestEvaluateFlagsErrors(t *testing.T) {
	output, isErr := evaluate("10 / 0")
	if !isErr {
		t.Fatalf("expected error flag for division by zero")
	}
	if !strings.Contains(output, "division by zero") {
		t.Fatalf("unexpected error output: %q", output)
	}

	output, isErr = evaluate("8 / 2")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "4" {
		t.Fatalf("expected 4, got %q", output)
	}
}

func TestUpdateUpKeyRecallsHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("1 + 1")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyUp})
	rm = model.(replModel)

	if rm.textInput.Value() != "1 + 1" {
		t.Fatalf("expected recalled expression, got %q", rm.textInput.Value())
	}
}
