package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcho(t *testing.T) {
	var buf strings.Builder
	orig := Stderr
	defer func() {
		Stderr = orig
	}()
	Stderr = &buf

	Echo("Locked '%s'", "a.txt")
	Echo("already terminated\n")
	assert.Equal(t, "Locked 'a.txt'\nalready terminated\n", buf.String())
}
