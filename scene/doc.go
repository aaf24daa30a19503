// Package scene declares the collaborator surface the elbow router consumes
// but does not own (spec.md §1 "Out of scope" and §6 "Collaborator surface
// consumed"): the shape/scene data store, hit-testing and snap-to-outline
// utilities, and the arrow-entity mutation sink.
//
// Production hosts (the diagram editor embedding this module) implement
// these interfaces against their real scene graph. This package also ships
// Memory, a small in-memory reference implementation used by this module's
// own tests and examples; it is not part of the production contract.
package scene
