package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmsCommand_Table(t *testing.T) {
	output, err := execute(t, newAlgorithmsCmd())
	require.NoError(t, err)

	assert.Contains(t, output, "Name")
	for _, name := range []string{"Naive", "KMP", "RabinKarp", "BoyerMoore", "GoCrazy"} {
		assert.Contains(t, output, name)
	}
}

func TestAlgorithmsCommand_JSON(t *testing.T) {
	output, err := execute(t, newAlgorithmsCmd(), "--format", "json")
	require.NoError(t, err)

	var infos []algorithmInfo
	require.NoError(t, json.Unmarshal([]byte(output), &infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "Naive", infos[0].Name.String())
	assert.Equal(t, "GoCrazy", infos[4].Name.String())
	for _, info := range infos {
		assert.NotEmpty(t, info.Description, info.Name.String())
	}
}

func TestAlgorithmsCommand_BadFormat(t *testing.T) {
	_, err := execute(t, newAlgorithmsCmd(), "--format", "xml")
	assert.Error(t, err)
}
