package renderer

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/checkers3d/checkers3d/graphics"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// debugMode is the flavour of glDebugMessageCallback a context provides.
type debugMode int

const (
	debugNone debugMode = iota
	// debugCore covers GL 4.3+ and desktop KHR_debug, which share the
	// unsuffixed entry points.
	debugCore
	// debugARB is the older ARB_debug_output extension.
	debugARB
)

func (m debugMode) String() string {
	switch m {
	case debugCore:
		return "core"
	case debugARB:
		return "ARB"
	default:
		return "none"
	}
}

// detectDebugMode picks the debug entry points for a context of the given
// version exposing the extensions extensionSupported reports.
func detectDebugMode(major, minor int32, extensionSupported func(string) bool) debugMode {
	if major > 4 || (major == 4 && minor >= 3) {
		return debugCore
	}
	if extensionSupported("GL_KHR_debug") {
		return debugCore
	}
	if extensionSupported("GL_ARB_debug_output") {
		return debugARB
	}
	return debugNone
}

// debugOutputMode queries the current context.
func debugOutputMode(ctx graphics.Context) debugMode {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	return detectDebugMode(major, minor, ctx.ExtensionSupported)
}

// enableDebugOutput installs the message callback through the entry point
// mode names. ARB_debug_output has no DEBUG_OUTPUT switch; it is always on
// in a debug context.
func enableDebugOutput(mode debugMode, verbose bool) {
	callback := newDebugCallback(verbose)
	switch mode {
	case debugCore:
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		gl.DebugMessageCallback(callback, nil)
	case debugARB:
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		gl.DebugMessageCallbackARB(callback, nil)
	}
}

func newDebugCallback(verbose bool) func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	return func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if !shouldReport(severity, verbose) {
			return
		}
		log.Print(formatDebugMessage(source, gltype, id, severity, message))
	}
}

// shouldReport drops notification-level chatter unless verbose is set.
func shouldReport(severity uint32, verbose bool) bool {
	return verbose || severity != gl.DEBUG_SEVERITY_NOTIFICATION
}

func formatDebugMessage(source, gltype, id, severity uint32, message string) string {
	return fmt.Sprintf("GL debug [%s] %s from %s (id %d): %s",
		debugSeverityName(severity), debugTypeName(gltype), debugSourceName(source), id, message)
}

func debugSourceName(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	default:
		return "other"
	}
}

func debugTypeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	default:
		return "other"
	}
}

func debugSeverityName(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return "notification"
	default:
		return "unknown"
	}
}
