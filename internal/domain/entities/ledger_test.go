package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	l := NewLedger()
	assert.Nil(t, l.Get("Luna"))
	assert.Equal(t, 0, l.Opinion("Luna"))

	assert.Equal(t, 15, l.Record("Luna", 30, "first"))
	assert.Equal(t, -5, l.Record("Cinder", -10, "spat"))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"Cinder", "Luna"}, l.Targets())
	assert.Same(t, l.Get("Luna"), l.GetOrCreate("Luna"))

	l.Forget("Cinder")
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Opinion("Cinder"))
}
