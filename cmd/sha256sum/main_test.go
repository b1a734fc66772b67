package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/assert"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	abc := filepath.Join(dir, "abc.txt")
	assert.NoError(t, os.WriteFile(abc, []byte("abc"), 0o644))

	empty := filepath.Join(dir, "empty.txt")
	assert.NoError(t, os.WriteFile(empty, nil, 0o644))

	var out bytes.Buffer
	assert.NoError(t, run([]string{abc, empty}, &out))

	assert.Equal(t, ""+
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "+abc+"\n"+
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  "+empty+"\n",
		out.String())
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "nope")}, &out))
	assert.Equal(t, 0, out.Len())
}
