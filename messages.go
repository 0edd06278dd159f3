package compositor

// PipelineID identifies a content pipeline. Paints for any pipeline other
// than the currently registered one are discarded silently.
type PipelineID int

// ReadyState mirrors the layout task's document-ready lifecycle, forwarded
// to the window driver unmodified.
type ReadyState int

const (
	ReadyStateBlank ReadyState = iota
	ReadyStateLoading
	ReadyStatePerformingLayout
	ReadyStateFinishedLoading
)

// RenderState mirrors the render task's painting lifecycle, forwarded to
// the window driver unmodified.
type RenderState int

const (
	RenderStateIdle RenderState = iota
	RenderStateRendering
)

// GPUContextHandle is an opaque handle to the GPU context owned by the
// main thread. The compositor never inspects it; it only hands it back to
// whoever requested it via GetGLContextMsg.
type GPUContextHandle any

// PaintBuffer is one rasterized buffer delivered as part of a Paint
// message, prior to being inserted into the quadtree.
type PaintBuffer struct {
	ScreenPos Rect
	Surface   GPUSurfaceHandle
}

// Msg is the compositor's inbound message enum. Each message kind is a
// distinct type implementing Msg; the dispatcher type-switches over it.
type Msg interface {
	isMsg()
}

type ExitMsg struct{}

func (ExitMsg) isMsg() {}

// GetSizeMsg requests the current window size. Reply is a bounded,
// synchronous reply channel the requester is blocked on.
type GetSizeMsg struct {
	Reply chan Size
}

func (GetSizeMsg) isMsg() {}

// GetGLContextMsg requests the current GPU context handle.
type GetGLContextMsg struct {
	Reply chan GPUContextHandle
}

func (GetGLContextMsg) isMsg() {}

type ChangeReadyStateMsg struct {
	State ReadyState
}

func (ChangeReadyStateMsg) isMsg() {}

type ChangeRenderStateMsg struct {
	State RenderState
}

func (ChangeRenderStateMsg) isMsg() {}

// SetLayoutRenderChansMsg registers the outbound script/render channels
// for a pipeline and installs input callbacks bound to the script channel.
// Ack receives a CompositorAck once registration completes.
type SetLayoutRenderChansMsg struct {
	Layout     *ScriptChan
	Render     *RenderChan
	PipelineID PipelineID
	Ack        chan CompositorAck
}

func (SetLayoutRenderChansMsg) isMsg() {}

// NewLayerMsg installs a fresh quadtree sized to Size, partitioned at
// TileSize, and triggers an immediate tile request.
type NewLayerMsg struct {
	Size     SizeF
	TileSize int
}

func (NewLayerMsg) isMsg() {}

type ResizeLayerMsg struct {
	Size SizeF
}

func (ResizeLayerMsg) isMsg() {}

type DeleteLayerMsg struct{}

func (DeleteLayerMsg) isMsg() {}

// PaintMsg delivers a batch of rasterized buffers for PipelineID. It is
// discarded if PipelineID does not match the currently registered
// pipeline.
type PaintMsg struct {
	PipelineID PipelineID
	Buffers    []PaintBuffer
	Size       SizeF
}

func (PaintMsg) isMsg() {}
