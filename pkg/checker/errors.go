package checker

import (
	"fmt"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// ConfigurationError reports an invalid check parameter (negative threshold,
// unparseable pattern, unknown check). It fails the offending check only and
// names the parameter so callers can surface it.
type ConfigurationError struct {
	Check  string
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("check %q: invalid configuration: %s", e.Check, e.Reason)
	}
	return fmt.Sprintf("check %q: invalid parameter %q: %s", e.Check, e.Param, e.Reason)
}

// StructuralError reports malformed scene input the engine cannot interpret,
// such as a hierarchy cycle or a face index outside the vertex range. It is
// never conflated with a finding.
type StructuralError struct {
	Check  string
	Node   scene.NodeID
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("check %q: malformed scene at node %s: %s", e.Check, e.Node, e.Reason)
	}
	return fmt.Sprintf("check %q: malformed scene: %s", e.Check, e.Reason)
}

// configErr is a shorthand used by checks; the runner fills in the check ID.
func configErr(param, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// structuralErr is a shorthand used by checks; the runner fills in the check ID.
func structuralErr(node scene.NodeID, format string, args ...any) *StructuralError {
	return &StructuralError{Node: node, Reason: fmt.Sprintf(format, args...)}
}

// NewConfigurationError builds a ConfigurationError for the named parameter.
func NewConfigurationError(param, format string, args ...any) *ConfigurationError {
	return configErr(param, format, args...)
}

// NewStructuralError builds a StructuralError for the given node (empty
// NodeID for scene-wide problems).
func NewStructuralError(node scene.NodeID, format string, args ...any) *StructuralError {
	return structuralErr(node, format, args...)
}
