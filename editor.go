package skycave

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RowStore is the editor's window onto the authoritative report rows. The
// editor never holds a copy of row data; it reads values and commits edits
// through this interface and keeps only cursor and buffer state of its own.
type RowStore interface {
	// RowCount returns the number of rows available.
	RowCount() int
	// Value returns the committed value at (row, field).
	Value(row int, field FieldKey) string
	// Commit writes value into (row, field).
	Commit(row int, field FieldKey, value string)
}

type editorMode int

const (
	editorBrowsing editorMode = iota
	editorEditing
	editorConfirming
)

type confirmChoice int

const (
	choiceUnset confirmChoice = iota
	choiceYes
	choiceNo
)

// editorEvent tells the host what the editor needs after handling a key.
type editorEvent int

const (
	// editorNone: nothing to do.
	editorNone editorEvent = iota
	// editorExit: user left the report screen.
	editorExit
	// editorCommitted: a buffer was committed into the row store. Host should
	// persist the rows.
	editorCommitted
	// editorSubmit: submission was confirmed. Fired at most once per report
	// session.
	editorSubmit
)

// editor implements the TM30 field-editing state machine: row selection,
// per-field edit buffering with Tab/Shift+Tab/Enter traversal, and the
// completeness-gated submission confirmation.
type editor struct {
	mode   editorMode
	row    int
	field  FieldKey
	input  textinput.Model
	choice confirmChoice
}

func newEditor() editor {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 64
	in.TextStyle = styleCellEditing
	in.Cursor.Style = styleCellEditing
	return editor{row: -1, input: in}
}

// reset drops all cursor, buffer and confirmation state.
func (ed editor) reset() editor {
	ed.mode = editorBrowsing
	ed.row = -1
	ed.field = ""
	ed.choice = choiceUnset
	ed.input.Reset()
	ed.input.Blur()
	return ed
}

// editing reports whether the field at (row, field) is currently open.
func (ed editor) editing(row int, field FieldKey) bool {
	return ed.mode == editorEditing && ed.row == row && ed.field == field
}

// handleKey advances the state machine by one key event. Keys that are not
// part of the machine fall through to the edit buffer when a field is open,
// and are ignored otherwise.
func (ed editor) handleKey(msg tea.KeyMsg, rows RowStore) (editor, editorEvent, tea.Cmd) {
	switch ed.mode {
	case editorBrowsing:
		return ed.handleBrowsingKey(msg, rows)
	case editorEditing:
		return ed.handleEditingKey(msg, rows)
	case editorConfirming:
		return ed.handleConfirmingKey(msg)
	}
	return ed, editorNone, nil
}

func (ed editor) handleBrowsingKey(msg tea.KeyMsg, rows RowStore) (editor, editorEvent, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return ed.reset(), editorExit, nil
	case tea.KeyUp:
		ed.row = decMin(ed.row, 0)
	case tea.KeyDown:
		ed.row = incMax(ed.row, rows.RowCount()-1)
	case tea.KeyTab:
		if rows.RowCount() > 0 {
			return ed.openField(0, editableReportFields[0], rows)
		}
	case tea.KeyShiftTab:
		if rows.RowCount() > 0 {
			return ed.openField(rows.RowCount()-1, editableReportFields[len(editableReportFields)-1], rows)
		}
	case tea.KeyEnter:
		if rows.RowCount() > 0 && allRowsComplete(rows) {
			ed.mode = editorConfirming
			ed.choice = choiceUnset
		}
	}
	return ed, editorNone, nil
}

func (ed editor) handleEditingKey(msg tea.KeyMsg, rows RowStore) (editor, editorEvent, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Discard the open buffer without committing.
		ed.mode = editorBrowsing
		ed.field = ""
		ed.input.Reset()
		ed.input.Blur()
		return ed, editorNone, nil
	case tea.KeyTab, tea.KeyEnter:
		rows.Commit(ed.row, ed.field, ed.input.Value())
		ed = ed.moveNext(rows)
		return ed, editorCommitted, nil
	case tea.KeyShiftTab:
		rows.Commit(ed.row, ed.field, ed.input.Value())
		ed = ed.movePrev(rows)
		return ed, editorCommitted, nil
	}
	var cmd tea.Cmd
	ed.input, cmd = ed.input.Update(msg)
	return ed, editorNone, cmd
}

func (ed editor) handleConfirmingKey(msg tea.KeyMsg) (editor, editorEvent, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		ed.mode = editorBrowsing
		ed.choice = choiceUnset
		return ed, editorNone, nil
	case tea.KeyEnter:
		switch ed.choice {
		case choiceYes:
			return ed.reset(), editorSubmit, nil
		case choiceNo:
			ed.mode = editorBrowsing
			ed.choice = choiceUnset
		}
		return ed, editorNone, nil
	}
	switch strings.ToLower(msg.String()) {
	case "y":
		ed.choice = choiceYes
	case "n":
		ed.choice = choiceNo
	}
	return ed, editorNone, nil
}

// selectField opens the given field for editing, the pointer-click equivalent
// of tabbing to it. Opening the booking id or an out-of-range cell is a
// no-op beyond selecting the row. Any uncommitted buffer of a previously open
// field is discarded.
func (ed editor) selectField(row int, field FieldKey, rows RowStore) (editor, editorEvent, tea.Cmd) {
	if ed.mode == editorConfirming {
		return ed, editorNone, nil
	}
	if row < 0 || row >= rows.RowCount() {
		return ed, editorNone, nil
	}
	if field == FieldBookingID {
		ed.row = row
		return ed, editorNone, nil
	}
	return ed.openField(row, field, rows)
}

func (ed editor) openField(row int, field FieldKey, rows RowStore) (editor, editorEvent, tea.Cmd) {
	ed.mode = editorEditing
	ed.row = row
	ed.field = field
	ed.input.SetValue(rows.Value(row, field))
	ed.input.CursorEnd()
	return ed, editorNone, ed.input.Focus()
}

// moveNext advances the cursor to the next editable field, wrapping to the
// first field of the next row. Past the last field of the last row the
// editor closes back to browsing.
func (ed editor) moveNext(rows RowStore) editor {
	fi := fieldIndex(ed.field)
	switch {
	case fi < len(editableReportFields)-1:
		ed.field = editableReportFields[fi+1]
	case ed.row < rows.RowCount()-1:
		ed.row++
		ed.field = editableReportFields[0]
	default:
		ed.mode = editorBrowsing
		ed.field = ""
		ed.input.Reset()
		ed.input.Blur()
		return ed
	}
	ed.input.SetValue(rows.Value(ed.row, ed.field))
	ed.input.CursorEnd()
	return ed
}

// movePrev moves the cursor to the previous editable field, wrapping to the
// last field of the previous row. At the first field of the first row the
// cursor stays put with the committed value reloaded.
func (ed editor) movePrev(rows RowStore) editor {
	fi := fieldIndex(ed.field)
	switch {
	case fi > 0:
		ed.field = editableReportFields[fi-1]
	case ed.row > 0:
		ed.row--
		ed.field = editableReportFields[len(editableReportFields)-1]
	}
	ed.input.SetValue(rows.Value(ed.row, ed.field))
	ed.input.CursorEnd()
	return ed
}

func fieldIndex(field FieldKey) int {
	for i, key := range editableReportFields {
		if key == field {
			return i
		}
	}
	return -1
}

// allRowsComplete reports whether every editable field of every row holds a
// non-blank value. This is the gate for opening the submission confirmation.
func allRowsComplete(rows RowStore) bool {
	for row := 0; row < rows.RowCount(); row++ {
		for _, key := range editableReportFields {
			if strings.TrimSpace(rows.Value(row, key)) == "" {
				return false
			}
		}
	}
	return true
}

// rowListStore adapts a host-owned row slice to the RowStore interface.
type rowListStore struct {
	rows *[]ReportRow
}

func (s rowListStore) RowCount() int { return len(*s.rows) }

func (s rowListStore) Value(row int, field FieldKey) string {
	if row < 0 || row >= len(*s.rows) {
		return ""
	}
	return (*s.rows)[row].Field(field)
}

func (s rowListStore) Commit(row int, field FieldKey, value string) {
	if row < 0 || row >= len(*s.rows) {
		return
	}
	(*s.rows)[row].SetField(field, value)
}
