// Package formats provides readers for host-free scene descriptions, letting
// the CLI and tests build scenes without a live host application.
package formats

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// Scene description errors.
var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrUnknownNodeRef  = errors.New("reference to unknown node")
	ErrAmbiguousRef    = errors.New("ambiguous node reference")
)

// sceneDoc is the YAML shape of a scene description.
type sceneDoc struct {
	Units    string       `yaml:"units"`
	Nodes    []nodeDoc    `yaml:"nodes"`
	Defaults []string     `yaml:"default_materials"`
	Bindings []bindingDoc `yaml:"bindings"`
	Textures []textureDoc `yaml:"textures"`
	Links    []linkDoc    `yaml:"links"`
}

type nodeDoc struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Type         string   `yaml:"type"`
	Parent       string   `yaml:"parent"`
	Visible      *bool    `yaml:"visible"`
	Intermediate bool     `yaml:"intermediate"`
	Mesh         *meshDoc `yaml:"mesh"`
}

type meshDoc struct {
	Positions [][3]float64 `yaml:"positions"`
	Faces     [][]int      `yaml:"faces"`
	Normals   [][3]float64 `yaml:"normals"`
	UVs       [][2]float64 `yaml:"uvs"`
	FaceUVs   [][]int      `yaml:"face_uvs"`
}

type bindingDoc struct {
	Mesh     string `yaml:"mesh"`
	Material string `yaml:"material"`
	Faces    []int  `yaml:"faces"`
}

type textureDoc struct {
	Node   string `yaml:"node"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type linkDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// nodeTypes maps description type tags to scene node types.
var nodeTypes = map[string]scene.NodeType{
	"transform":    scene.NodeTransform,
	"mesh":         scene.NodeMesh,
	"shading":      scene.NodeShading,
	"file_texture": scene.NodeFileTexture,
}

// LoadScene reads a YAML scene description from disk.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene description %s: %w", path, err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene description %s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds an in-memory scene from YAML. Node references (parent,
// binding, texture, link fields) name another node by its explicit id or,
// when unambiguous, by its name. Visibility defaults to true.
func ParseScene(data []byte) (*scene.Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	units := doc.Units
	if units == "" {
		units = "cm"
	}
	s := scene.NewScene(units)

	// First pass: assign IDs so references can resolve in any order.
	ids := make([]scene.NodeID, len(doc.Nodes))
	byRef := make(map[string]scene.NodeID)
	nameCount := make(map[string]int)
	for i, n := range doc.Nodes {
		id := scene.NodeID(n.ID)
		if id == "" {
			id = scene.NewNodeID()
		}
		ids[i] = id
		if n.ID != "" {
			byRef[n.ID] = id
		}
		nameCount[n.Name]++
	}
	for i, n := range doc.Nodes {
		if n.Name == "" || nameCount[n.Name] != 1 {
			continue
		}
		if _, taken := byRef[n.Name]; !taken {
			byRef[n.Name] = ids[i]
		}
	}

	resolve := func(ref string) (scene.NodeID, error) {
		if ref == "" {
			return "", nil
		}
		if id, ok := byRef[ref]; ok {
			return id, nil
		}
		if nameCount[ref] > 1 {
			return "", fmt.Errorf("%w: %q names %d nodes", ErrAmbiguousRef, ref, nameCount[ref])
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeRef, ref)
	}

	// Second pass: build nodes and meshes.
	for i, n := range doc.Nodes {
		typ, ok := nodeTypes[n.Type]
		if !ok {
			return nil, fmt.Errorf("%w: %q (node %q)", ErrUnknownNodeType, n.Type, n.Name)
		}
		parent, err := resolve(n.Parent)
		if err != nil {
			return nil, fmt.Errorf("node %q parent: %w", n.Name, err)
		}
		visible := true
		if n.Visible != nil {
			visible = *n.Visible
		}
		s.AddNode(scene.Node{
			ID:           ids[i],
			Name:         n.Name,
			Type:         typ,
			Parent:       parent,
			Visible:      visible,
			Intermediate: n.Intermediate,
		})
		if n.Mesh != nil {
			s.SetMesh(ids[i], buildMesh(n.Mesh))
		}
	}

	for _, d := range doc.Defaults {
		id, err := resolve(d)
		if err != nil {
			return nil, fmt.Errorf("default material: %w", err)
		}
		s.MarkDefaultMaterial(id)
	}

	for _, b := range doc.Bindings {
		mesh, err := resolve(b.Mesh)
		if err != nil {
			return nil, fmt.Errorf("binding mesh: %w", err)
		}
		mat, err := resolve(b.Material)
		if err != nil {
			return nil, fmt.Errorf("binding material: %w", err)
		}
		s.AddBinding(scene.MaterialBinding{Mesh: mesh, Material: mat, Faces: b.Faces})
	}

	for _, tx := range doc.Textures {
		node, err := resolve(tx.Node)
		if err != nil {
			return nil, fmt.Errorf("texture node: %w", err)
		}
		s.AddTexture(scene.TextureRef{Node: node, Path: tx.Path, Width: tx.Width, Height: tx.Height})
	}

	for _, l := range doc.Links {
		from, err := resolve(l.From)
		if err != nil {
			return nil, fmt.Errorf("link from: %w", err)
		}
		to, err := resolve(l.To)
		if err != nil {
			return nil, fmt.Errorf("link to: %w", err)
		}
		s.AddLink(scene.ShadingLink{From: from, To: to})
	}

	return s, nil
}

// buildMesh converts the YAML mesh shape into scene geometry. It performs no
// validation; malformed geometry is the checks' business to surface.
func buildMesh(d *meshDoc) *scene.Mesh {
	m := &scene.Mesh{Faces: d.Faces, FaceUVs: d.FaceUVs}
	for _, p := range d.Positions {
		m.Positions = append(m.Positions, mgl64.Vec3{p[0], p[1], p[2]})
	}
	for _, n := range d.Normals {
		m.Normals = append(m.Normals, mgl64.Vec3{n[0], n[1], n[2]})
	}
	for _, uv := range d.UVs {
		m.UVs = append(m.UVs, mgl64.Vec2{uv[0], uv[1]})
	}
	return m
}
