package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStageString(t *testing.T) {
	if Vertex.String() != "vertex" || Fragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", Vertex, Fragment)
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("unknown stage = %q", got)
	}
}

func TestLoadMissingSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), VertexFile)

	s, err := Load(path, Vertex)
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if s.Valid() {
		t.Errorf("expected absent shader, got %d", s)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestLinkMissingShader(t *testing.T) {
	tests := []struct {
		name             string
		vertex, fragment Shader
	}{
		{"both absent", 0, 0},
		{"vertex absent", 0, 7},
		{"fragment absent", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Link(tt.vertex, tt.fragment)
			if !errors.Is(err, ErrMissingShader) {
				t.Fatalf("expected ErrMissingShader, got %v", err)
			}
			if p.Valid() {
				t.Errorf("expected absent program, got %d", p)
			}
		})
	}
}

func TestLoadProgramMissingDirectory(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadProgram(dir)
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if p.Valid() {
		t.Errorf("expected absent program, got %d", p)
	}
	if !strings.Contains(err.Error(), VertexFile) {
		t.Errorf("expected the vertex file to be reported first: %v", err)
	}
}

func TestLoadProgramMissingFragmentOnly(t *testing.T) {
	requireGL(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, VertexFile), []byte(validVertex), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadProgram(dir)
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if !strings.Contains(err.Error(), FragmentFile) {
		t.Errorf("expected the fragment file to be reported: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	ce := &CompileError{Stage: Fragment, Log: "0:3: syntax error"}
	if got := ce.Error(); got != "fragment shader compilation failed: 0:3: syntax error" {
		t.Errorf("CompileError = %q", got)
	}
	le := &LinkError{Log: "vColor not written"}
	if got := le.Error(); got != "program linking failed: vColor not written" {
		t.Errorf("LinkError = %q", got)
	}
}

func TestTrimLog(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf, "error\n\x00")

	tests := []struct {
		length int32
		want   string
	}{
		{0, ""},
		{-1, ""},
		{5, "error"},
		{7, "error"},
		{64, "error"},
	}
	for _, tt := range tests {
		if got := trimLog(buf, tt.length); got != tt.want {
			t.Errorf("trimLog(len=%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestAbsentHandlesDeleteIsNoop(t *testing.T) {
	// No GL context exists here; deleting absent handles must not reach the driver.
	Shader(0).Delete()
	Program(0).Delete()
}
