package schema

// Service describes the network behavior of an actor: the ports its
// container listens on and which of them are published.
type Service struct {
	// Kind of the service created for the exposed ports, e.g.
	// "ClusterIP" or "NodePort". Empty means the cluster default.
	Kind string `json:"kind,omitempty"`

	// Ports the container listens on.
	Ports []Port `json:"ports,omitempty"`
}

// Port is a single container port and its exposure policy.
type Port struct {
	// Port number the container listens on.
	Port int32 `json:"port"`

	// Protocol of the port, "TCP" or "UDP". Empty means TCP.
	Protocol string `json:"protocol,omitempty"`

	// Expose publishes the port through the actor's service.
	Expose bool `json:"expose,omitempty"`
}

// Ports returns every container port declared across the actor's
// services, or nil when none are declared.
func (s *ActorSpec) Ports() []Port {
	var ports []Port
	for _, svc := range s.Services {
		ports = append(ports, svc.Ports...)
	}
	return ports
}

// ExposedPorts returns the subset of declared ports published through
// the actor's service, or nil when nothing is exposed.
func (s *ActorSpec) ExposedPorts() []Port {
	var ports []Port
	for _, svc := range s.Services {
		for _, p := range svc.Ports {
			if p.Expose {
				ports = append(ports, p)
			}
		}
	}
	return ports
}
