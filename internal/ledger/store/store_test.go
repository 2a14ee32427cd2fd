package store

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedBalances_InsertsInIDOrder(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`(?s)ANY\(\$1::uuid\[\]\)\s+ORDER BY id\s+ON CONFLICT`), seedBalances)
}
