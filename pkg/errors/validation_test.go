package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "simple", label: "build", wantErr: false},
		{name: "with punctuation", label: "pkg/digraph@v1.2", wantErr: false},
		{name: "unicode", label: "grph", wantErr: false},
		{name: "empty", label: "", wantErr: true},
		{name: "control character", label: "a\x01b", wantErr: true},
		{name: "null byte", label: "a\x00b", wantErr: true},
		{name: "too long", label: strings.Repeat("x", 257), wantErr: true},
		{name: "max length", label: strings.Repeat("x", 256), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexLabel(%q) err = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidVertex {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidVertex)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "relative", path: "out/graph.svg", wantErr: false},
		{name: "absolute", path: "/tmp/graph.svg", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "null byte", path: "out\x00.svg", wantErr: true},
		{name: "too long", path: strings.Repeat("a/", 300), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGraphName(t *testing.T) {
	tests := []struct {
		name    string
		graph   string
		wantErr bool
	}{
		{name: "simple", graph: "pipeline", wantErr: false},
		{name: "with dash", graph: "release-train", wantErr: false},
		{name: "empty", graph: "", wantErr: true},
		{name: "forward slash", graph: "a/b", wantErr: true},
		{name: "backslash", graph: "a\\b", wantErr: true},
		{name: "control character", graph: "a\tb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphName(tt.graph)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphName(%q) err = %v, wantErr %v", tt.graph, err, tt.wantErr)
			}
		})
	}
}
