package scene

// Scene is an in-memory View implementation. It is used by the scene
// description loader and by tests; host integrations with a live scene graph
// implement View directly instead.
//
// A Scene is built up front and treated as immutable once handed to a run.
type Scene struct {
	nodes       []Node
	byID        map[NodeID]*Node
	meshes      map[NodeID]*Mesh
	bindings    []MaterialBinding
	textures    []TextureRef
	links       []ShadingLink
	defaultMats []NodeID
	units       string
}

// NewScene returns an empty scene with the given linear unit setting.
func NewScene(units string) *Scene {
	return &Scene{
		byID:   make(map[NodeID]*Node),
		meshes: make(map[NodeID]*Mesh),
		units:  units,
	}
}

// AddNode inserts a node. If the node has no ID one is generated. The
// (possibly generated) ID is returned. Parent/child links are maintained on
// both ends when the parent is already present.
func (s *Scene) AddNode(n Node) NodeID {
	if n.ID == "" {
		n.ID = NewNodeID()
	}
	s.nodes = append(s.nodes, n)
	// Appending may have relocated the backing array.
	s.byID = make(map[NodeID]*Node, len(s.nodes))
	for i := range s.nodes {
		s.byID[s.nodes[i].ID] = &s.nodes[i]
	}
	if n.Parent != "" {
		if p, ok := s.byID[n.Parent]; ok {
			p.Children = append(p.Children, n.ID)
		}
	}
	return n.ID
}

// SetMesh attaches geometry to a mesh-type node.
func (s *Scene) SetMesh(id NodeID, m *Mesh) {
	s.meshes[id] = m
}

// AddBinding records a material binding.
func (s *Scene) AddBinding(b MaterialBinding) {
	s.bindings = append(s.bindings, b)
}

// AddTexture records a file-texture reference.
func (s *Scene) AddTexture(t TextureRef) {
	s.textures = append(s.textures, t)
}

// AddLink records a shading-graph connection.
func (s *Scene) AddLink(l ShadingLink) {
	s.links = append(s.links, l)
}

// MarkDefaultMaterial marks a shading node as an unmodified host default.
func (s *Scene) MarkDefaultMaterial(id NodeID) {
	s.defaultMats = append(s.defaultMats, id)
}

// Nodes implements View.
func (s *Scene) Nodes(filter []NodeID) []Node {
	if filter == nil {
		out := make([]Node, len(s.nodes))
		copy(out, s.nodes)
		return out
	}
	want := make(map[NodeID]struct{}, len(filter))
	for _, id := range filter {
		want[id] = struct{}{}
	}
	var out []Node
	for _, n := range s.nodes {
		if _, ok := want[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Node implements View.
func (s *Scene) Node(id NodeID) (Node, bool) {
	n, ok := s.byID[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Mesh implements View.
func (s *Scene) Mesh(id NodeID) (*Mesh, bool) {
	m, ok := s.meshes[id]
	return m, ok
}

// Bindings implements View.
func (s *Scene) Bindings() []MaterialBinding {
	return s.bindings
}

// Textures implements View.
func (s *Scene) Textures() []TextureRef {
	return s.textures
}

// ShadingLinks implements View.
func (s *Scene) ShadingLinks() []ShadingLink {
	return s.links
}

// DefaultMaterials implements View.
func (s *Scene) DefaultMaterials() []NodeID {
	return s.defaultMats
}

// Units implements View.
func (s *Scene) Units() string {
	return s.units
}
