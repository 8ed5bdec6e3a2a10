package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.jsn.cam/bmireduce/internal/worker"
)

func TestMain(m *testing.M) {
	if worker.IsWorkerProcess() {
		os.Exit(worker.Main())
	}
	os.Exit(m.Run())
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmi.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeInput(t, "Gender,Height,Weight\nM,180,80\nF,165,60\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-path", path, "2", "3"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "Input: "+path+" (")
	assert.Contains(t, out, "Naive approach - Average BMI: 23.36\n")
	assert.Contains(t, out, "Multithreading approach - Average BMI: 23.36\n")
	assert.Contains(t, out, "Multiprocessing approach - Average BMI: 23.36\n")
	assert.Contains(t, out, "Multiprocessing approach execution time: ")
}

func TestRun_Runs(t *testing.T) {
	path := writeInput(t, "Gender,Height,Weight\nM,180,80\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-path", path, "-runs", "3", "-policy", "round-robin", "1", "1"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "(3 runs)")
}

func TestRun_HeaderOnly(t *testing.T) {
	path := writeInput(t, "Gender,Height,Weight\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-path", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Naive approach - Average BMI: -1.00\n")
	assert.Contains(t, stdout.String(), "Multithreading approach - Average BMI: -1.00\n")
	assert.Contains(t, stdout.String(), "Multiprocessing approach - Average BMI: -1.00\n")
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-path", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Naive approach - Average BMI: -1.00\n")
	assert.NotContains(t, stdout.String(), "Multithreading approach - Average BMI")
	assert.Contains(t, stderr.String(), "unable to open input file")
}

func TestRun_NonNumericWorkers(t *testing.T) {
	path := writeInput(t, "Gender,Height,Weight\nM,180,80\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-path", path, "lots"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "worker count must be at least 1")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-runs", "0"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-policy", "random"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
