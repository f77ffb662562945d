package main

import (
	"testing"
)

func TestGetCommand(t *testing.T) {
	stream := writeTestStream(t)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "string leaf", path: "name", want: "\"sword\"\n"},
		{name: "int leaf", path: "id", want: "42\n"},
		{name: "list element", path: "enchants[1]", want: "5\n"},
		{name: "whole list", path: "enchants", want: "[1, 5]\n"},
		{name: "root", path: "", want: "{id: 42, name: \"sword\", enchants: [1, 5]}\n"},
		{name: "missing key", path: "nope", wantErr: true},
		{name: "bad index", path: "enchants[9]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()

			output, err := captureOutput(t, func() error {
				return runGet([]string{stream, tt.path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runGet() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if !tt.wantErr && output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}
