// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTrainCommand(t *testing.T) {
	out, _, err := execute(t, "train", "--epochs", "3", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Total params: 33")
	assert.Contains(t, out, "epochs: 3")
	assert.Contains(t, out, "accuracy:")
	assert.Contains(t, out, "PREDICTION")
}

func TestTrainCommand_Options(t *testing.T) {
	out, _, err := execute(t, "train", "--epochs", "2", "--optimizer", "sgd",
		"--batchnorm", "--dropout", "0.2", "--hidden", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "BatchNormalization")
	assert.Contains(t, out, "Dropout")
	// 2·4+4 + 2·4 + 4·1+1
	assert.Contains(t, out, "Total params: 25")
}

func TestTrainCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown optimizer", []string{"train", "--optimizer", "rmsprop"}, `unknown optimizer "rmsprop"`},
		{"bad hidden", []string{"train", "--hidden", "0"}, "--hidden must be positive"},
		{"bad dropout", []string{"summary", "--dropout", "1"}, "--dropout must be in [0, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	out, _, err := execute(t, "summary", "--hidden", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "hidden")
	assert.Contains(t, out, "output")
	assert.Contains(t, out, "Total params: 13")
}

func TestEnvCommand(t *testing.T) {
	t.Setenv("SEQNET_EPOCHS", "12")

	out, _, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "SEQNET_EPOCHS")
	assert.Contains(t, out, "12")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seqnet version "+version+"\n", out)

	out, _, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "seqnet version "+version+"\n", out)
}
