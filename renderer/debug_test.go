package renderer

import (
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

func TestDebugNames(t *testing.T) {
	if got := debugSourceName(gl.DEBUG_SOURCE_SHADER_COMPILER); got != "shader compiler" {
		t.Errorf("source = %q", got)
	}
	if got := debugSourceName(0); got != "other" {
		t.Errorf("unknown source = %q", got)
	}
	if got := debugTypeName(gl.DEBUG_TYPE_ERROR); got != "error" {
		t.Errorf("type = %q", got)
	}
	if got := debugSeverityName(gl.DEBUG_SEVERITY_HIGH); got != "high" {
		t.Errorf("severity = %q", got)
	}
	if got := debugSeverityName(0); got != "unknown" {
		t.Errorf("unknown severity = %q", got)
	}
}

func TestFormatDebugMessage(t *testing.T) {
	got := formatDebugMessage(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_PERFORMANCE, 42, gl.DEBUG_SEVERITY_MEDIUM, "buffer moved to system memory")
	want := "GL debug [medium] performance from API (id 42): buffer moved to system memory"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestDetectDebugMode(t *testing.T) {
	tests := []struct {
		name         string
		major, minor int32
		extensions   []string
		want         debugMode
	}{
		{"4.3 core", 4, 3, nil, debugCore},
		{"4.6 core", 4, 6, nil, debugCore},
		{"4.1 with KHR_debug", 4, 1, []string{"GL_KHR_debug"}, debugCore},
		{"4.1 with both extensions", 4, 1, []string{"GL_ARB_debug_output", "GL_KHR_debug"}, debugCore},
		{"4.0 with ARB_debug_output", 4, 0, []string{"GL_ARB_debug_output"}, debugARB},
		{"4.1 without extensions", 4, 1, nil, debugNone},
		{"3.3 with unrelated extension", 3, 3, []string{"GL_ARB_timer_query"}, debugNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supported := func(ext string) bool {
				for _, e := range tt.extensions {
					if e == ext {
						return true
					}
				}
				return false
			}
			if got := detectDebugMode(tt.major, tt.minor, supported); got != tt.want {
				t.Errorf("detectDebugMode(%d.%d) = %s, want %s", tt.major, tt.minor, got, tt.want)
			}
		})
	}
}

func TestShouldReport(t *testing.T) {
	tests := []struct {
		severity uint32
		verbose  bool
		want     bool
	}{
		{gl.DEBUG_SEVERITY_HIGH, false, true},
		{gl.DEBUG_SEVERITY_LOW, false, true},
		{gl.DEBUG_SEVERITY_NOTIFICATION, false, false},
		{gl.DEBUG_SEVERITY_NOTIFICATION, true, true},
	}
	for _, tt := range tests {
		if got := shouldReport(tt.severity, tt.verbose); got != tt.want {
			t.Errorf("shouldReport(%s, verbose=%v) = %v, want %v",
				debugSeverityName(tt.severity), tt.verbose, got, tt.want)
		}
	}
}
