package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every save path has a read path: anything a --save flag persists must be
// reachable again through a registered command.
func TestRegisteredCommands(t *testing.T) {
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range []string{
		"init",
		"set-tm",
		"show-tm",
		"generate",
		"show-program",
		"list-programs",
		"delete-program",
		"export",
		"templates",
		"landmarks",
		"volume-check",
		"overload",
		"fatigue",
		"stimulus",
		"deload",
		"list-assessments",
	} {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}

func TestListAssessmentsFlags(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"list-assessments"})
	require.NoError(t, err)

	assert.NotNil(t, c.Flags().Lookup("kind"))
	assert.NotNil(t, c.Flags().Lookup("full"))
}
