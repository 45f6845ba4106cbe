package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractsCommand_NoFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate-extracts")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "at least one")
}

func TestValidateExtractsCommand_ValidPayload(t *testing.T) {
	binaryPath := getBinaryPath(t)

	reqPath := writeTestFile(t, "requirement.json", testRequirementJSON)

	cmd := exec.Command(binaryPath, "validate-extracts", "--requirement-extract", reqPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, string(output), "OK")
}

func TestValidateExtractsCommand_InvalidPayload(t *testing.T) {
	binaryPath := getBinaryPath(t)

	candPath := writeTestFile(t, "candidate.json", `{"hard_skills": "not an array"}`)

	cmd := exec.Command(binaryPath, "validate-extracts", "--candidate-extract", candPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "INVALID")
}
