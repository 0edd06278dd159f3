package compositor

// fakeWindowDriver is a test double for WindowDriver: CheckLoop is a
// no-op (callers fire the registered callbacks directly instead of
// relying on a real polling loop), matching the "typed channel, no
// mocking framework" idiom used throughout this package's tests.
type fakeWindowDriver struct {
	size        Size
	readyState  ReadyState
	renderState RenderState
	presented   int

	onResize   func(w, h int)
	onNavigate func(dir NavigationDirection)
	onLoadURL  func(url string)
	onMouse    func(kind MouseEventKind, button MouseButton, layerPoint PointF)
	onScroll   func(dx, dy float64)
	onZoom     func(magnification float64)
}

func newFakeWindowDriver(size Size) *fakeWindowDriver {
	return &fakeWindowDriver{size: size}
}

func (f *fakeWindowDriver) Size() Size           { return f.size }
func (f *fakeWindowDriver) Present()             { f.presented++ }
func (f *fakeWindowDriver) CheckLoop()           {}
func (f *fakeWindowDriver) SetReadyState(s ReadyState)   { f.readyState = s }
func (f *fakeWindowDriver) SetRenderState(s RenderState) { f.renderState = s }

func (f *fakeWindowDriver) SetOnResize(fn func(w, h int))                             { f.onResize = fn }
func (f *fakeWindowDriver) SetOnNavigate(fn func(dir NavigationDirection))            { f.onNavigate = fn }
func (f *fakeWindowDriver) SetOnLoadURL(fn func(url string))                          { f.onLoadURL = fn }
func (f *fakeWindowDriver) SetOnMouse(fn func(MouseEventKind, MouseButton, PointF))    { f.onMouse = fn }
func (f *fakeWindowDriver) SetOnScroll(fn func(dx, dy float64))                       { f.onScroll = fn }
func (f *fakeWindowDriver) SetOnZoom(fn func(magnification float64))                  { f.onZoom = fn }

// fakeGPUBackend records RenderScene calls instead of touching a real GPU.
type fakeGPUBackend struct {
	ctx         GPUContextHandle
	renderCalls int
	lastScene   *Scene
	lastWindow  Size
	initErr     error
	renderErr   error
}

func (f *fakeGPUBackend) InitRenderContext() (GPUContextHandle, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	if f.ctx == nil {
		f.ctx = "fake-gl-context"
	}
	return f.ctx, nil
}

func (f *fakeGPUBackend) RenderScene(ctx GPUContextHandle, scene *Scene, window Size) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.renderCalls++
	f.lastScene = scene
	f.lastWindow = window
	return nil
}
