package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestState_Status(t *testing.T) {
	s := NewState(nil)
	now := time.Now()

	s.SetStatus("Copied: 1", now)
	s.ExpireStatus(now.Add(statusTTL - time.Millisecond))
	assert.Equal(t, "Copied: 1", s.Status)

	s.ExpireStatus(now.Add(statusTTL))
	assert.Empty(t, s.Status)
}

func TestState_ClickIcon(t *testing.T) {
	s := NewState(nil)
	now := time.Now()
	within := 400 * time.Millisecond

	assert.False(t, s.ClickIcon("calculator", now, within))
	assert.True(t, s.ClickIcon("calculator", now.Add(within), within))
	assert.Empty(t, s.PressedIcon)

	assert.False(t, s.ClickIcon("calculator", now, within))
	assert.False(t, s.ClickIcon("notepad", now, within))
	assert.Equal(t, "notepad", s.PressedIcon)

	s.ClearIcon()
	assert.False(t, s.ClickIcon("notepad", now, within))
}
