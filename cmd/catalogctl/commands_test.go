// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	a := &app{}
	defer a.close()

	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelpListsCommands(t *testing.T) {
	out, err := run("--help")
	require.NoError(t, err)
	for _, name := range []string{"migrate", "seed", "category", "image", "stock", "cache-log"} {
		assert.Contains(t, out, name)
	}
}

// Argument errors are reported before any connection is attempted, so
// these run without a database.
func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"primary needs numeric id", []string{"image", "primary", "RG001", "abc"}, `invalid id "abc"`},
		{"delete needs positive id", []string{"image", "delete", "0"}, `invalid id "0"`},
		{"stock needs a quantity", []string{"stock", "RG001", "-3"}, `invalid quantity "-3"`},
		{"missing image file", []string{"image", "add", "RG001", "/nonexistent/ring.jpg"}, "no such file"},
		{"too many args", []string{"category", "delete", "a", "b"}, "accepts 1 arg"},
		{"migrate takes none", []string{"migrate", "now"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "-1", "x1"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
