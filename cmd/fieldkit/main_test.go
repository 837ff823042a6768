package main

import (
	"bytes"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	stdoutIsTerminal = func() bool { return false }
	os.Exit(m.Run())
}

func execute(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
