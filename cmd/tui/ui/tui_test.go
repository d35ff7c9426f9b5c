package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/rolo/internal/record"
	modelpkg "github.com/VoxDroid/rolo/internal/tui/model"
)

type fakeStore struct {
	recs    []record.Record
	listErr error
	delErr  error
}

func (f *fakeStore) List(context.Context) ([]record.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]record.Record(nil), f.recs...), nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if f.delErr != nil {
		return f.delErr
	}
	for i, r := range f.recs {
		if r.ID == id {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			return nil
		}
	}
	return modelpkg.ErrNotFound
}

func directory() *fakeStore {
	return &fakeStore{recs: []record.Record{
		{ID: 1, Ident: record.Name("Alice"), Phone: "1234567890"},
		{ID: 2, Ident: record.Company("Acme Inc"), Phone: "9876543210"},
		{ID: 3, Ident: record.Both{Company: "Test Company", Name: "Bob"}, Phone: "10293848576"},
	}}
}

// newTestModel builds a browser over st and runs Init plus a resize.
func newTestModel(t *testing.T, st *fakeStore) *TuiModel {
	t.Helper()
	m := NewModel(modelpkg.New(st))
	m1, _ := m.Update(m.Init()())
	m1, _ = m1.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m1.(*TuiModel)
}

func press(m *TuiModel, msg tea.KeyMsg) (*TuiModel, tea.Cmd) {
	m1, cmd := m.Update(msg)
	return m1.(*TuiModel), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(m *TuiModel, s string) *TuiModel {
	for _, r := range s {
		m, _ = press(m, runes(string(r)))
	}
	return m
}

func titles(m *TuiModel) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(recItem).Title())
	}
	return out
}

func TestInitPopulatesListAndPreview(t *testing.T) {
	m := newTestModel(t, directory())
	if len(m.list.Items()) != 3 {
		t.Fatalf("expected 3 items got %d", len(m.list.Items()))
	}
	if !strings.Contains(m.vp.View(), "Alice") || !strings.Contains(m.vp.View(), "1234567890") {
		t.Fatalf("expected preview for first record, got:\n%s", m.vp.View())
	}
}

func TestInitErrorShownInStatus(t *testing.T) {
	st := directory()
	st.listErr = errors.New("disk gone")
	m := newTestModel(t, st)
	if !strings.Contains(m.View(), "load failed: disk gone") {
		t.Fatalf("expected load error in status bar")
	}
}

func TestFilterTypingUpdatesList(t *testing.T) {
	m := newTestModel(t, directory())
	m, _ = press(m, runes("/"))
	if !m.filterMode {
		t.Fatalf("expected filter mode to be active")
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"bo", []string{"Bob (Test Company)"}},
		{"acme", []string{"Acme Inc"}},
		{"9", []string{"Acme Inc"}},
		{"company", []string{"Bob (Test Company)"}},
	}
	for _, c := range cases {
		m.listFilter = ""
		m = typeText(m, c.query)
		got := titles(m)
		if strings.Join(got, "|") != strings.Join(c.want, "|") {
			t.Fatalf("filter %q: got %v want %v", c.query, got, c.want)
		}
	}

	// Backspace widens the match again
	m.listFilter = ""
	m = typeText(m, "bz")
	if len(m.list.Items()) != 0 {
		t.Fatalf("expected no matches for bz")
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.listFilter != "b" || len(m.list.Items()) != 1 {
		t.Fatalf("expected one match for b after backspace, got %v", titles(m))
	}
}

func TestFilterEnterOpensSelection(t *testing.T) {
	m := newTestModel(t, directory())
	m, _ = press(m, runes("/"))
	m = typeText(m, "acme")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to end on Enter")
	}
	if !m.showDetail || !strings.Contains(m.detail, "Acme Inc") {
		t.Fatalf("expected detail for Acme, got showDetail=%v detail=%q", m.showDetail, m.detail)
	}
	if m.listFilter != "acme" {
		t.Fatalf("filter should stay applied after Enter")
	}
}

func TestFilterEscRestoresList(t *testing.T) {
	m := newTestModel(t, directory())
	m, _ = press(m, runes("/"))
	m = typeText(m, "bo")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterMode || m.listFilter != "" || len(m.list.Items()) != 3 {
		t.Fatalf("expected Esc to clear the filter, got mode=%v filter=%q items=%d", m.filterMode, m.listFilter, len(m.list.Items()))
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, directory())
	if _, cmd := press(m, runes("q")); cmd == nil {
		t.Fatalf("expected quit command for q")
	}
	// q inside filter mode is text, not quit
	m, _ = press(m, runes("/"))
	m, cmd := press(m, runes("q"))
	if cmd != nil || m.listFilter != "q" {
		t.Fatalf("expected q to be typed into the filter")
	}
	if _, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command for ctrl+c in filter mode")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	st := directory()
	m := newTestModel(t, st)

	m, _ = press(m, runes("d"))
	if !m.confirmDelete || !strings.Contains(m.status, "Delete Alice?") {
		t.Fatalf("expected delete confirmation, got %q", m.status)
	}
	m, cmd := press(m, runes("n"))
	if cmd != nil || m.confirmDelete || len(st.recs) != 3 {
		t.Fatalf("expected delete to be cancelled")
	}

	m, _ = press(m, runes("d"))
	m, cmd = press(m, runes("y"))
	if cmd == nil {
		t.Fatalf("expected delete command")
	}
	m1, _ := m.Update(cmd())
	m = m1.(*TuiModel)
	if len(st.recs) != 2 || len(m.list.Items()) != 2 {
		t.Fatalf("expected record removed, store=%d list=%d", len(st.recs), len(m.list.Items()))
	}
	if m.status != "deleted Alice" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestDeleteErrorShown(t *testing.T) {
	st := directory()
	st.delErr = errors.New("locked")
	m := newTestModel(t, st)
	m, _ = press(m, runes("d"))
	_, cmd := press(m, runes("y"))
	m1, _ := m.Update(cmd())
	if got := m1.(*TuiModel).status; got != "delete failed: locked" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestDetailAndBack(t *testing.T) {
	m := newTestModel(t, directory())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.showDetail || !strings.Contains(m.detail, "Company:") {
		t.Fatalf("expected Acme detail, got %q", m.detail)
	}
	if !strings.Contains(m.View(), "(b) Back") {
		t.Fatalf("expected detail footer")
	}
	m, _ = press(m, runes("b"))
	if m.showDetail {
		t.Fatalf("expected b to return to the list")
	}
}

func TestHeadlessRender(t *testing.T) {
	m := newTestModel(t, directory())
	out := m.View()
	for _, want := range []string{"rolo", "(3)", "Alice", "Acme Inc", "3 records"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	m, _ = press(m, runes("T"))
	if !m.themeHighContrast {
		t.Fatalf("expected theme toggle")
	}
	if m.View() == "" {
		t.Fatalf("expected non-empty view in high-contrast theme")
	}
}
