// Package test contains assertion helpers shared by package tests.
package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/ava12/jargon"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	Expect(t, expected == got, fmt.Sprintf("%q", expected), fmt.Sprintf("%q", got))
}

// ExpectErrorCode fails unless e is a *jargon.Error with expected code.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if jargon.HasCode(e, expected) {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

// ExpectErrorPos fails unless e is a *jargon.Error reported at line and col.
func ExpectErrorPos(t *testing.T, line, col int, e error) {
	t.Helper()
	ee, valid := e.(*jargon.Error)
	if valid && ee.Line == line && ee.Col == col {
		return
	}

	fatalf(t, "expecting error at line %d col %d, got %v", line, col, e)
}
