package session

import (
	"math/rand"
	"testing"

	"github.com/sandeepkv93/tasklog/internal/model"
)

func TestEditorStartsWithOneBlankRow(t *testing.T) {
	e := NewEditor()
	rows := e.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].LocalID != 1 || !rows[0].SameContent(model.TaskRow{}) {
		t.Fatalf("unexpected initial row: %+v", rows[0])
	}
	if e.Dirty() {
		t.Fatal("expected fresh editor to be clean")
	}
}

func TestEditorAddRowUsesMonotonicIDs(t *testing.T) {
	e := NewEditor()
	second := e.AddRow()
	third := e.AddRow()
	if second != 2 || third != 3 {
		t.Fatalf("expected ids 2 and 3, got %d and %d", second, third)
	}
	if !e.RemoveRow(third) {
		t.Fatal("expected removal of row 3")
	}
	if next := e.AddRow(); next != 4 {
		t.Fatalf("expected removed id not to be reused, got %d", next)
	}
}

func TestEditorNeverDropsBelowOneRow(t *testing.T) {
	e := NewEditor()
	only := e.Rows()[0].LocalID
	if e.RemoveRow(only) {
		t.Fatal("expected removing the last row to be refused")
	}
	if e.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", e.Len())
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			e.AddRow()
			continue
		}
		rows := e.Rows()
		e.RemoveRow(rows[rng.Intn(len(rows))].LocalID)
		if e.Len() < 1 {
			t.Fatalf("editor dropped to %d rows at step %d", e.Len(), i)
		}
	}
}

func TestEditorRemoveUnknownRowIsNoop(t *testing.T) {
	e := NewEditor()
	e.AddRow()
	if e.RemoveRow(99) {
		t.Fatal("expected unknown id removal to be refused")
	}
	if e.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", e.Len())
	}
}

func TestEditorUpdateFieldKeepsIdentityAndNeighbours(t *testing.T) {
	e := NewEditor()
	first := e.Rows()[0].LocalID
	second := e.AddRow()
	e.UpdateField(second, model.FieldProjectName, "Other")
	before := e.Rows()

	e.UpdateField(first, model.FieldProjectName, "Acme")
	e.UpdateField(first, model.FieldTaskName, "Billing")
	e.UpdateField(first, model.FieldHours, "4.5")

	after := e.Rows()
	if after[0].LocalID != first || after[1].LocalID != second {
		t.Fatalf("local ids changed: %+v", after)
	}
	if after[0].ProjectName != "Acme" || after[0].TaskName != "Billing" || after[0].Hours != 4.5 {
		t.Fatalf("unexpected updated row: %+v", after[0])
	}
	if after[1] != before[1] {
		t.Fatalf("neighbour row changed: before %+v after %+v", before[1], after[1])
	}
	if before[0].ProjectName != "" {
		t.Fatalf("expected earlier snapshot to stay untouched, got %+v", before[0])
	}
}

func TestEditorHoursCoercion(t *testing.T) {
	e := NewEditor()
	id := e.Rows()[0].LocalID
	e.UpdateField(id, model.FieldHours, "abc")
	if got := e.Rows()[0].Hours; got != 0 {
		t.Fatalf("expected non-numeric hours to coerce to 0, got %v", got)
	}
	e.UpdateField(id, model.FieldHours, "-3")
	if got := e.Rows()[0].Hours; got != 0 {
		t.Fatalf("expected negative hours to coerce to 0, got %v", got)
	}
	e.SetHours(id, 6)
	if got := e.Rows()[0].Hours; got != 6 {
		t.Fatalf("expected 6 hours, got %v", got)
	}
	if e.UpdateField(id, model.Field("notes"), "x") {
		t.Fatal("expected unknown field update to be refused")
	}
}

func TestEditorDirtyTracksInitialSnapshot(t *testing.T) {
	e := NewEditor()
	e.Initialize([]model.TaskRow{{ProjectName: "Acme", TaskName: "Billing", Hours: 4}})
	if e.Dirty() {
		t.Fatal("expected clean after initialize")
	}
	id := e.Rows()[0].LocalID
	e.UpdateField(id, model.FieldHours, "6")
	if !e.Dirty() {
		t.Fatal("expected dirty after edit")
	}
	e.UpdateField(id, model.FieldHours, "4")
	if e.Dirty() {
		t.Fatal("expected clean after reverting the edit")
	}
	added := e.AddRow()
	if !e.Dirty() {
		t.Fatal("expected dirty after add")
	}
	e.RemoveRow(added)
	if e.Dirty() {
		t.Fatal("expected clean after removing the added row")
	}
}
