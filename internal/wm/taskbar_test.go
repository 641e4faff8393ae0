package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskbar_Reflect(t *testing.T) {
	tb := NewTaskbar(testApps)

	tb.Reflect([]string{"notepad"})

	got := map[string]bool{}
	for _, e := range tb.Entries() {
		got[e.Name] = e.Active
	}
	assert.Equal(t, map[string]bool{"calculator": false, "notepad": true, "system": false}, got)

	tb.Reflect(nil)
	for _, e := range tb.Entries() {
		assert.False(t, e.Active, e.Name)
	}
}

func TestTaskbar_KeepsCatalogOrder(t *testing.T) {
	tb := NewTaskbar(testApps)

	var labels []string
	for _, e := range tb.Entries() {
		labels = append(labels, e.Label)
	}

	assert.Equal(t, []string{"Calculator", "Notepad", "System"}, labels)
}

func TestTaskbar_Time(t *testing.T) {
	tb := NewTaskbar(testApps)
	assert.Equal(t, "", tb.Time())

	tb.SetTime("09:41")
	assert.Equal(t, "09:41", tb.Time())
}
