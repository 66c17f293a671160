package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/registration"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("builds every component", func(t *testing.T) {
		user, ok := registration.Resolve(registration.Request{
			FirstName: "Teerapat", LastName: "Xeus", Age: 37, Sex: "M", Country: "Thailand",
		})
		require.True(t, ok)
		assert.Equal(t, "Teerapat", user.FirstName().String())
		assert.Equal(t, "Xeus", user.LastName().String())
		assert.Equal(t, 37, user.Age().Int())
		assert.Equal(t, registration.Male{}, user.Gender())
		assert.Equal(t, registration.OtherRegion{}, user.Region())
	})

	t.Run("unmapped country", func(t *testing.T) {
		user, ok := registration.Resolve(registration.Request{
			FirstName: "Jane", LastName: "Doe", Age: 37, Sex: "M", Country: "Canada",
		})
		assert.False(t, ok)
		assert.True(t, user.IsZero())
	})

	t.Run("skips business age rules", func(t *testing.T) {
		user, ok := registration.Resolve(registration.Request{
			FirstName: "Tim", LastName: "Doe", Age: 5, Sex: "X", Country: "Germany",
		})
		require.True(t, ok)
		assert.Equal(t, 5, user.Age().Int())
		assert.Equal(t, registration.Europe{}, user.Region())
	})
}

func TestResolve_AnyAbsentComponent(t *testing.T) {
	t.Parallel()

	base := registration.Request{FirstName: "John", LastName: "Doe", Age: 30, Sex: "F", Country: "USA"}
	_, ok := registration.Resolve(base)
	require.True(t, ok)

	tests := []struct {
		name   string
		mutate func(*registration.Request)
	}{
		{name: "first name", mutate: func(r *registration.Request) { r.FirstName = "" }},
		{name: "last name", mutate: func(r *registration.Request) { r.LastName = "" }},
		{name: "zero age", mutate: func(r *registration.Request) { r.Age = 0 }},
		{name: "negative age", mutate: func(r *registration.Request) { r.Age = -1 }},
		{name: "sex", mutate: func(r *registration.Request) { r.Sex = "G" }},
		{name: "country", mutate: func(r *registration.Request) { r.Country = "Atlantis" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			user, ok := registration.Resolve(req)
			assert.False(t, ok)
			assert.Equal(t, registration.User{}, user)
		})
	}
}

func TestRegionTable_Resolve(t *testing.T) {
	t.Parallel()

	table := registration.NewRegionTable(map[string]registration.Region{
		"Canada": registration.NorthAmerica{},
	})

	user, ok := table.Resolve(registration.Request{
		FirstName: "Jane", LastName: "Doe", Age: 37, Sex: "M", Country: "Canada",
	})
	require.True(t, ok)
	assert.Equal(t, registration.NorthAmerica{}, user.Region())

	_, ok = table.Resolve(validRequest())
	assert.False(t, ok, "Thailand is not in the custom table")
}
