package therapy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, typ := range All() {
		assert.True(t, Valid(typ), "expected %q to be valid", typ)
	}
	assert.False(t, Valid("Acupuncture"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("abhyanga"), "therapy names are case-sensitive")
}

func TestAllIsStable(t *testing.T) {
	want := []Type{Abhyanga, Shirodhara, Pizhichil, KatiVasti, Nasya, Virechana, Consultation}
	assert.Equal(t, want, All())
}
