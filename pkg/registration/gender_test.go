package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/registration"
)

func TestParseGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want registration.Gender
		ok   bool
	}{
		{code: "M", want: registration.Male{}, ok: true},
		{code: "F", want: registration.Female{}, ok: true},
		{code: "X", want: registration.NonBinary{}, ok: true},
		{code: "m", ok: false},
		{code: "G", ok: false},
		{code: "Q", ok: false},
		{code: "", ok: false},
		{code: "MF", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := registration.ParseGender(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if !ok {
				assert.Nil(t, got)
			}

			again, okAgain := registration.ParseGender(tt.code)
			assert.Equal(t, got, again)
			assert.Equal(t, ok, okAgain)
		})
	}
}

func TestGender_ClosedSet(t *testing.T) {
	t.Parallel()

	variants := []registration.Gender{registration.Male{}, registration.Female{}, registration.NonBinary{}}
	wantCodes := []string{"M", "F", "X"}
	wantNames := []string{"Male", "Female", "NonBinary"}

	for i, g := range variants {
		assert.Equal(t, wantCodes[i], g.Code())
		assert.Equal(t, wantNames[i], g.String())

		parsed, ok := registration.ParseGender(g.Code())
		require.True(t, ok)
		assert.Equal(t, g, parsed, "every variant round-trips through its code")
	}
}

func TestMatchGender(t *testing.T) {
	t.Parallel()

	label := func(g registration.Gender) int {
		return registration.MatchGender(g,
			func() int { return 1 },
			func() int { return 2 },
			func() int { return 3 },
		)
	}

	assert.Equal(t, 1, label(registration.Male{}))
	assert.Equal(t, 2, label(registration.Female{}))
	assert.Equal(t, 3, label(registration.NonBinary{}))
	assert.Equal(t, 0, label(nil))
}
