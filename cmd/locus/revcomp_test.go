package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevcompCommand_Args(t *testing.T) {
	stdout, _, err := runCLI(t, "", "revcomp", "AACG", "acgtRYN-")
	require.NoError(t, err)
	assert.Equal(t, "CGTT\n-NRYacgt\n", stdout)
}

func TestRevcompCommand_Stdin(t *testing.T) {
	stdout, _, err := runCLI(t, ">seq1.2 first\nAAAC\n>seq2\nGGT\n", "revcomp")
	require.NoError(t, err)
	assert.Contains(t, stdout, ">seq1.2 first\nGTTT\n")
	assert.Contains(t, stdout, ">seq2\nACC")
}
