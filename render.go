// Package render implements a CPU-only triangle rasterizer.
//
// Meshes are given in normalized device coordinates. A [Renderer] projects
// the vertices onto a [Target], which may be an in-memory frame buffer, an
// image file or a window, and draws each face either as a wireframe or
// filled. The line and fill algorithms are exchangeable: see [LineDrawer]
// and [FillStrategy].
//
// There is no antialiasing, no depth buffer and no texturing. Faces are
// drawn in order with opaque overwrite.
package render

// RenderOnce draws the given meshes with a single style onto t and
// presents the target.
func RenderOnce(t Target, meshes []*Mesh, style DrawStyle, opts ...Option) error {
	r := NewRenderer(t, opts...)
	for _, m := range meshes {
		id := r.AddMesh(m)
		if err := r.SetDrawType(id, style); err != nil {
			return err
		}
	}
	return r.Draw()
}
