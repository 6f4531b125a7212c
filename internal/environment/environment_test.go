package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_DefaultsToProduction verifies that an unset APP_ENVIRONMENT
// resolves to the production environment.
func TestResolve_DefaultsToProduction(t *testing.T) {
	t.Setenv(EnvironmentVar, "")
	t.Setenv(ContainerVar, "")

	d := Resolve()

	assert.Equal(t, Production, d.Name)
	assert.False(t, d.InContainer)
	assert.False(t, d.IsDevelopment())
}

// TestResolve_NameIsLowercased verifies case-insensitive environment names.
func TestResolve_NameIsLowercased(t *testing.T) {
	t.Setenv(EnvironmentVar, "Development")

	d := Resolve()

	assert.Equal(t, Development, d.Name)
	assert.True(t, d.IsDevelopment())
}

// TestResolve_ContainerFlag verifies that only the literal value "true"
// marks the process as containerized.
func TestResolve_ContainerFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true sets the flag", value: "true", want: true},
		{name: "empty leaves it unset", value: "", want: false},
		{name: "1 is not accepted", value: "1", want: false},
		{name: "TRUE is not accepted", value: "TRUE", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ContainerVar, tt.value)
			assert.Equal(t, tt.want, Resolve().InContainer)
		})
	}
}

// TestResolve_HostIsNeverEmpty verifies that the machine identity is always
// populated, even if the hostname lookup fails.
func TestResolve_HostIsNeverEmpty(t *testing.T) {
	d := Resolve()
	require.NotEmpty(t, d.Host)
}
