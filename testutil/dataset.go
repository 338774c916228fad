package testutil

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/graphapi/graph"
	"github.com/hupe1980/graphapi/schema"
	"github.com/hupe1980/graphapi/value"
)

// Vertex labels of the reference dataset.
const (
	LabelPerson schema.Label = iota
	LabelProject
	LabelRust
)

// Edge labels of the reference dataset.
const (
	LabelKnows schema.Label = iota
	LabelCreated
	LabelLanguage
)

// Vertex is the vertex type of the reference dataset. Which fields are
// meaningful depends on Kind.
type Vertex struct {
	Kind      schema.Label
	Name      string
	Age       uint64
	UniqueID  uuid.UUID
	Username  string
	Biography string
}

// Label implements schema.Element.
func (v Vertex) Label() schema.Label { return v.Kind }

// Person creates a person vertex.
func Person(name string, age uint64, username, biography string) Vertex {
	return Vertex{
		Kind:      LabelPerson,
		Name:      name,
		Age:       age,
		UniqueID:  uuid.NewSHA1(uuid.NameSpaceOID, []byte(username)),
		Username:  username,
		Biography: biography,
	}
}

// Project creates a project vertex.
func Project(name string) Vertex {
	return Vertex{Kind: LabelProject, Name: name}
}

// Rust creates the language vertex.
func Rust() Vertex {
	return Vertex{Kind: LabelRust}
}

// Edge is the edge type of the reference dataset.
type Edge struct {
	Kind  schema.Label
	Since int64
	Name  string
}

// Label implements schema.Element.
func (e Edge) Label() schema.Label { return e.Kind }

// Knows creates a knows edge.
func Knows(since int64) Edge { return Edge{Kind: LabelKnows, Since: since} }

// Created creates a created edge.
func Created() Edge { return Edge{Kind: LabelCreated} }

// Language creates a language edge.
func Language(name string) Edge { return Edge{Kind: LabelLanguage, Name: name} }

// Indexes holds the index handles of the reference schema.
type Indexes struct {
	PersonName      schema.Index
	PersonAge       schema.Index
	PersonUniqueID  schema.Index
	PersonUsername  schema.Index
	PersonBiography schema.Index
	ProjectName     schema.Index
}

// Schema builds the reference schema.
func Schema() (*schema.Schema[Vertex, Edge], Indexes) {
	b := schema.NewBuilder[Vertex, Edge]().
		VertexLabels("Person", "Project", "Rust").
		EdgeLabels("Knows", "Created", "Language")

	ix := Indexes{
		PersonName: b.VertexIndex("person_name", LabelPerson, schema.Hash, value.KindString,
			func(v Vertex) (value.Value, bool) { return value.String(v.Name), true }),
		PersonAge: b.VertexIndex("person_age", LabelPerson, schema.Ordered, value.KindUint,
			func(v Vertex) (value.Value, bool) { return value.Uint(v.Age), true }),
		PersonUniqueID: b.VertexIndex("person_unique_id", LabelPerson, schema.Hash, value.KindUUID,
			func(v Vertex) (value.Value, bool) { return value.UUID(v.UniqueID), true }),
		PersonUsername: b.VertexIndex("person_username", LabelPerson, schema.Ordered, value.KindString,
			func(v Vertex) (value.Value, bool) { return value.String(v.Username), true }),
		PersonBiography: b.VertexIndex("person_biography", LabelPerson, schema.FullText, value.KindString,
			func(v Vertex) (value.Value, bool) { return value.String(v.Biography), v.Biography != "" }),
		ProjectName: b.VertexIndex("project_name", LabelProject, schema.Hash, value.KindString,
			func(v Vertex) (value.Value, bool) { return value.String(v.Name), true }),
	}
	return b.MustBuild(), ix
}

// SetAge changes the age of a person and reports it to l.
func (ix Indexes) SetAge(v *Vertex, l schema.MutationListener, age uint64) {
	before := v.Age
	v.Age = age
	l.Update(ix.PersonAge, value.Uint(before), value.Uint(age))
}

// SetUsername changes the username of a person and reports it to l.
func (ix Indexes) SetUsername(v *Vertex, l schema.MutationListener, username string) {
	before := v.Username
	v.Username = username
	l.Update(ix.PersonUsername, value.String(before), value.String(username))
}

// SetBiography changes the biography of a person and reports it to l.
func (ix Indexes) SetBiography(v *Vertex, l schema.MutationListener, biography string) {
	var before, after value.Value
	if v.Biography != "" {
		before = value.String(v.Biography)
	}
	if biography != "" {
		after = value.String(biography)
	}
	v.Biography = biography
	l.Update(ix.PersonBiography, before, after)
}

// Refs holds the ids of the reference dataset.
type Refs struct {
	Bryn     graph.VertexID
	Julia    graph.VertexID
	GraphAPI graph.VertexID
	Rust     graph.VertexID

	BrynKnowsJulia       graph.EdgeID
	JuliaKnowsBryn       graph.EdgeID
	BrynCreatedGraphAPI  graph.EdgeID
	GraphAPILanguageRust graph.EdgeID
}

// Populate adds the reference dataset to g:
//
//	Bryn  -Knows(1999)-> Julia
//	Julia -Knows(1999)-> Bryn
//	Bryn  -Created->     GraphApi
//	GraphApi -Language-> Rust
func Populate(g graph.MutableGraph[Vertex, Edge]) Refs {
	var r Refs
	r.Bryn = g.AddVertex(Person("Bryn", 45, "bryn", "Did some graph stuff"))
	r.Julia = g.AddVertex(Person("Julia", 48, "julia", "Mastered the English language"))
	r.GraphAPI = g.AddVertex(Project("GraphApi"))
	r.Rust = g.AddVertex(Rust())

	r.BrynKnowsJulia = mustEdge(g.AddEdge(r.Bryn, r.Julia, Knows(1999)))
	r.JuliaKnowsBryn = mustEdge(g.AddEdge(r.Julia, r.Bryn, Knows(1999)))
	r.BrynCreatedGraphAPI = mustEdge(g.AddEdge(r.Bryn, r.GraphAPI, Created()))
	r.GraphAPILanguageRust = mustEdge(g.AddEdge(r.GraphAPI, r.Rust, Language("Rust")))
	return r
}

func mustEdge(id graph.EdgeID, err error) graph.EdgeID {
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return id
}

// RandomPeople adds n people with random names and ages in [18, 90) to g,
// and connects each to a Zipf-distributed earlier person with a Knows edge.
// It returns the person ids in insertion order.
func (r *RNG) RandomPeople(g graph.MutableGraph[Vertex, Edge], n int) []graph.VertexID {
	ids := make([]graph.VertexID, 0, n)
	for i := 0; i < n; i++ {
		name := r.Word(6)
		id := g.AddVertex(Person(name, r.Uint64n(18, 90), fmt.Sprintf("%s%d", name, i), ""))
		if len(ids) > 0 {
			target := ids[len(ids)-1-r.Zipf(len(ids), 1.2)]
			mustEdge(g.AddEdge(id, target, Knows(int64(1990+r.Intn(30)))))
		}
		ids = append(ids, id)
	}
	return ids
}
