package compositor

// GPUBackend rasterizes a Scene onto the platform surface. It is the
// compositor's only dependency on a concrete graphics API.
type GPUBackend interface {
	// InitRenderContext acquires (or returns the cached) GPU context
	// handle, which GetGLContextMsg hands back to requesters.
	InitRenderContext() (GPUContextHandle, error)
	// RenderScene draws every sublayer of scene, applying scene.Root
	// composed with each sublayer's own transform.
	RenderScene(ctx GPUContextHandle, scene *Scene, window Size) error
}
