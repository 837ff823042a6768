package field

// Binding is the host-owned text buffer a field displays and edits. The
// field calls Get on every render and Set when the user types; it never
// keeps its own copy between renders.
type Binding interface {
	Get() string
	Set(value string)
}

// Bind adapts a string owned by the host to a Binding.
func Bind(target *string) Binding {
	return pointerBinding{target: target}
}

type pointerBinding struct {
	target *string
}

func (b pointerBinding) Get() string {
	if b.target == nil {
		return ""
	}
	return *b.target
}

func (b pointerBinding) Set(value string) {
	if b.target == nil {
		return
	}
	*b.target = value
}

// Constant is a read-only Binding; edits are dropped. Previews use it.
type Constant string

// Get returns the constant value.
func (c Constant) Get() string { return string(c) }

// Set ignores the proposed edit.
func (Constant) Set(string) {}

// BindingFuncs builds a Binding from a getter and a setter, for hosts that
// keep their buffers in a map or a store.
type BindingFuncs struct {
	GetFunc func() string
	SetFunc func(string)
}

// Get calls GetFunc.
func (b BindingFuncs) Get() string {
	if b.GetFunc == nil {
		return ""
	}
	return b.GetFunc()
}

// Set calls SetFunc.
func (b BindingFuncs) Set(value string) {
	if b.SetFunc != nil {
		b.SetFunc(value)
	}
}
