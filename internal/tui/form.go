package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/timers/internal/usecase"
)

// formField identifies a field of the new timer form.
type formField int

const (
	fieldName formField = iota
	fieldDuration
	fieldCategory
	fieldHalfway
	fieldCount
)

// addForm holds the new timer form. Fields keep their text until the
// form is saved or cancelled.
// Fields are ordered to minimize memory padding.
type addForm struct {
	err      error
	name     textinput.Model
	duration textinput.Model
	category textinput.Model
	focus    formField
	halfway  bool
}

func newAddForm() addForm {
	name := textinput.New()
	name.Placeholder = "Timer name"
	name.CharLimit = 100

	duration := textinput.New()
	duration.Placeholder = "Seconds"
	duration.CharLimit = 9

	category := textinput.New()
	category.Placeholder = "Category"
	category.CharLimit = 50

	f := addForm{name: name, duration: duration, category: category}
	f.setFocus(fieldName)
	return f
}

// Input returns the use case input for the current field values.
func (f *addForm) Input() usecase.AddTimerInput {
	return usecase.AddTimerInput{
		Name:         f.name.Value(),
		Category:     f.category.Value(),
		Duration:     f.duration.Value(),
		HalfwayAlert: f.halfway,
	}
}

// Reset clears every field and the error and focuses the name field.
func (f *addForm) Reset() {
	f.name.Reset()
	f.duration.Reset()
	f.category.Reset()
	f.halfway = false
	f.err = nil
	f.setFocus(fieldName)
}

// Next moves focus to the next field, wrapping around.
func (f *addForm) Next() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus to the previous field, wrapping around.
func (f *addForm) Prev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// ToggleHalfway flips the halfway alert switch.
func (f *addForm) ToggleHalfway() {
	f.halfway = !f.halfway
}

func (f *addForm) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.duration.Blur()
	f.category.Blur()
	switch field {
	case fieldName:
		f.name.Focus()
	case fieldDuration:
		f.duration.Focus()
	case fieldCategory:
		f.category.Focus()
	case fieldHalfway, fieldCount:
	}
}

// Update forwards a message to the focused text input.
func (f *addForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDuration:
		f.duration, cmd = f.duration.Update(msg)
	case fieldCategory:
		f.category, cmd = f.category.Update(msg)
	case fieldHalfway, fieldCount:
	}
	return cmd
}
