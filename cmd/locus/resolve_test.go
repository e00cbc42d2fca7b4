package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praetorian-inc/locus/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRefStore imports a single reference record into a fresh SQLite store.
func newRefStore(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "refs.db")
	refs := writeFile(t, "refs.fa", ">AB000001.1 test reference\nTTTTT\n")
	_, _, err := runCLI(t, "", "--store", dbPath, "--quiet", "import", refs)
	require.NoError(t, err)
	return dbPath
}

func TestResolveCommand_Raw(t *testing.T) {
	dbPath := newRefStore(t)
	host := writeFile(t, "host.fa", ">host\nAACCGGTTAA\n")

	stdout, _, err := runCLI(t, "",
		"--store", dbPath, "--format", "raw",
		"resolve", "--host", host, "join(complement(1..10),AB000001.1:1..5)")
	require.NoError(t, err)
	assert.Equal(t, "TTAACCGGTTTTTTT\n", stdout)
}

func TestResolveCommand_FASTA(t *testing.T) {
	host := writeFile(t, "host.fa", ">host\nAACCGGTTAA\n")

	stdout, _, err := runCLI(t, "",
		"--format", "fasta",
		"resolve", "--host", host, "--id", "feat1", "complement(3..6)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, ">feat1 complement(3..6)\n"), stdout)
	assert.Contains(t, stdout, "CCGG")
}

func TestResolveCommand_JSON(t *testing.T) {
	host := writeFile(t, "host.fa", ">host\nAACCGGTTAA\n")

	stdout, _, err := runCLI(t, "",
		"--format", "json",
		"resolve", "--host", host, "1..4")
	require.NoError(t, err)

	var got struct {
		ID       string `json:"id"`
		Location string `json:"location"`
		Length   int64  `json:"length"`
		Digest   string `json:"digest"`
		Sequence string `json:"sequence"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "1..4", got.ID)
	assert.Equal(t, "AACC", got.Sequence)
	assert.Equal(t, int64(4), got.Length)
	assert.Equal(t, types.ComputeSequenceDigest([]byte("AACC")).Hex(), got.Digest)
}

func TestResolveCommand_Human(t *testing.T) {
	host := writeFile(t, "host.fa", ">host\nAACCGGTTAA\n")

	stdout, _, err := runCLI(t, "", "resolve", "--host", host, "gap(3)", "2..3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Location: gap(3)")
	assert.Contains(t, stdout, "    NNN\n")
	assert.Contains(t, stdout, "Length: 2 bp")
	assert.Contains(t, stdout, "    AC\n")
}

func TestResolveCommand_HostID(t *testing.T) {
	host := writeFile(t, "host.fa", ">chr1\nAAAA\n>chr2.3\nCCCC\n")

	stdout, _, err := runCLI(t, "", "--format", "raw", "resolve", "--host", host, "--host-id", "chr2", "1..2")
	require.NoError(t, err)
	assert.Equal(t, "CC\n", stdout)

	_, _, err = runCLI(t, "", "resolve", "--host", host, "--host-id", "chr9", "1..2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record")
}

func TestResolveCommand_PartialFailure(t *testing.T) {
	host := writeFile(t, "host.fa", ">host\nACGT\n")

	stdout, stderr, err := runCLI(t, "", "--format", "raw", "resolve", "--host", host, "1..2", "3..9", "ZZ1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 locations failed to resolve")
	assert.Equal(t, "AC\n", stdout)
	assert.Contains(t, stderr, "3..9")
	assert.Contains(t, stderr, "range out of bounds")
	assert.Contains(t, stderr, "accession not found")
}

func TestResolveCommand_MissingHost(t *testing.T) {
	_, _, err := runCLI(t, "", "resolve", "--host", filepath.Join(t.TempDir(), "missing.fa"), "1..2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening host")
}
