// Package schema defines the deployable-unit ("actor") types shared by
// the platform's controllers: the build/deploy specification and the
// condition-based status model the reconciliation loop records its
// progress in.
package schema

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ActorSpec describes one deployable unit: where its source lives,
// what image it produces and how it runs.
type ActorSpec struct {
	// Name of the actor.
	Name string `json:"name"`

	// Description of the actor.
	Description string `json:"description,omitempty"`

	// Source locates the code to build.
	Source Source `json:"source"`

	// Image the build produces, in OCI addressable format:
	// [<registry>/][<project>/]<image>.
	Image string `json:"image"`

	// Command overrides the default command declared by the container
	// image.
	Command string `json:"command,omitempty"`

	// Environments set in the container.
	Environments map[string]string `json:"environments,omitempty"`

	// Partners are companion sources this actor depends on, keyed by
	// name.
	Partners map[string]Source `json:"partners,omitempty"`

	// Services declare the ports the actor serves on.
	Services []Service `json:"services,omitempty"`

	// Sync enables rebuilding on upstream changes instead of pinning
	// to the revision resolved at admission.
	Sync bool `json:"sync,omitempty"`

	// Build describes how the image is built.
	Build *Build `json:"build,omitempty"`
}

// Build describes how an actor's image is built.
type Build struct {
	// Dockerfile path relative to the build context. Empty means the
	// conventional "Dockerfile".
	Dockerfile string `json:"dockerfile,omitempty"`

	// Builder names the buildpacks builder when no Dockerfile is used.
	Builder string `json:"builder,omitempty"`

	// Context is the build context directory.
	Context string `json:"context,omitempty"`

	// Environments passed to the build.
	Environments map[string]string `json:"environments,omitempty"`
}

// BuildName returns the identifier for the build job of this actor at
// its resolved revision.
func (s *ActorSpec) BuildName() string {
	return fmt.Sprintf("%s-%s", s.Name, s.Source.Revision())
}

// DockerTag returns the image reference tagged with the resolved
// revision.
func (s *ActorSpec) DockerTag() string {
	return fmt.Sprintf("%s:%s", s.Image, s.Source.Revision())
}

// HasDockerfile reports whether the build is Dockerfile-driven.
func (s *ActorSpec) HasDockerfile() bool {
	return s.Build != nil && s.Build.Dockerfile != ""
}

// Dockerfile returns the configured Dockerfile path, defaulting to
// "Dockerfile".
func (s *ActorSpec) Dockerfile() string {
	if s.Build != nil && s.Build.Dockerfile != "" {
		return s.Build.Dockerfile
	}
	return "Dockerfile"
}

// ActorState is the lifecycle state an actor condition records.
type ActorState string

const (
	// StatePending means the actor was admitted but no build has
	// started.
	StatePending ActorState = "Pending"

	// StateBuilding means a build of the resolved revision is running.
	StateBuilding ActorState = "Building"

	// StateRunning means the built image is deployed and serving.
	StateRunning ActorState = "Running"

	// StateFailed means the last build or deployment failed.
	StateFailed ActorState = "Failed"
)

// ActorStatus tracks actor progress as Kubernetes-style conditions,
// one condition type per lifecycle state.
type ActorStatus struct {
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// Pending reports whether the Pending condition is true.
func (s *ActorStatus) Pending() bool {
	return meta.IsStatusConditionTrue(s.Conditions, string(StatePending))
}

// Building reports whether the Building condition is true.
func (s *ActorStatus) Building() bool {
	return meta.IsStatusConditionTrue(s.Conditions, string(StateBuilding))
}

// Running reports whether the Running condition is true.
func (s *ActorStatus) Running() bool {
	return meta.IsStatusConditionTrue(s.Conditions, string(StateRunning))
}

// Failed reports whether the Failed condition is true.
func (s *ActorStatus) Failed() bool {
	return meta.IsStatusConditionTrue(s.Conditions, string(StateFailed))
}

// SetCondition records cond, replacing any existing condition of the
// same type and preserving its transition time when the status did not
// change.
func (s *ActorStatus) SetCondition(cond metav1.Condition) {
	meta.SetStatusCondition(&s.Conditions, cond)
}

// NewCondition builds a condition record for the given state.
func NewCondition(state ActorState, status bool, reason, message string) metav1.Condition {
	condStatus := metav1.ConditionFalse
	if status {
		condStatus = metav1.ConditionTrue
	}
	return metav1.Condition{
		Type:               string(state),
		Status:             condStatus,
		Reason:             reason,
		Message:            message,
		LastTransitionTime: metav1.Now(),
	}
}

// PendingCondition marks the actor as created and awaiting build.
func PendingCondition() metav1.Condition {
	return NewCondition(StatePending, true, "Created", "")
}

// BuildingCondition marks a build as in progress.
func BuildingCondition() metav1.Condition {
	return NewCondition(StateBuilding, true, "Build", "")
}

// RunningCondition records the deployment outcome.
func RunningCondition(status bool, reason, message string) metav1.Condition {
	return NewCondition(StateRunning, status, reason, message)
}

// FailedCondition records a failure with its reason and message.
func FailedCondition(status bool, reason, message string) metav1.Condition {
	return NewCondition(StateFailed, status, reason, message)
}
