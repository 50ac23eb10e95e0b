package pkg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveUID(t *testing.T) {
	assert.Equal(t, os.Geteuid() == 0, EffectiveUID{}.IsPrivileged())
}
