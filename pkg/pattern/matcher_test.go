package pattern_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/pattern"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("valid expression", func(t *testing.T) {
		m := pattern.Compile(`^[01]$`)
		require.NoError(t, pattern.Check(m))
		assert.True(t, m.MatchString("0"))
		assert.False(t, m.MatchString("2"))
		assert.Equal(t, `^[01]$`, pattern.Describe(m))
	})

	t.Run("invalid expression", func(t *testing.T) {
		m := pattern.Compile(`([`)
		assert.False(t, m.MatchString("anything"))

		err := pattern.Check(m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pattern.ErrInvalidPattern))
		assert.Equal(t, `([`, pattern.Describe(m))
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	var nilRegexp *regexp.Regexp

	assert.Error(t, pattern.Check(nil))
	assert.Error(t, pattern.Check(nilRegexp))
	assert.NoError(t, pattern.Check(regexp.MustCompile(`.`)))
	assert.NoError(t, pattern.Check(pattern.Email))
	assert.Equal(t, "<nil>", pattern.Describe(nil))
}

func TestMatcherFunc(t *testing.T) {
	t.Parallel()

	m := pattern.MatcherFunc(func(s string) bool { return s == "ok" })
	assert.True(t, m.MatchString("ok"))
	assert.False(t, m.MatchString("nope"))
}
