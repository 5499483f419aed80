// Package translator rewrites GLSL ES 3.00 shader sources into desktop GLSL
// so the same files can be shared with WebGL2 builds.
package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, starting it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// IsES reports whether source declares GLSL ES 3.00 in its #version directive.
func IsES(source string) bool {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !strings.HasPrefix(line, "#version") {
			return false
		}
		fields := strings.Fields(strings.TrimPrefix(line, "#version"))
		return len(fields) == 2 && fields[0] == "300" && fields[1] == "es"
	}
	return false
}

// ToDesktop translates a GLSL ES 3.00 source for the given stage ("vertex" or
// "fragment") into GLSL 330 core, which a 4.0 core context accepts.
func ToDesktop(source, stage string) (string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", fmt.Errorf("failed to start shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return out.Code, nil
}
