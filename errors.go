package texture

import "fmt"

// DecodeError tags a failure that originated while decoding an image
// into a pixel buffer.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "texture: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ChannelCountError reports an image whose channel count a
// texture-construction layer cannot handle. The constructors in this
// package convert every stdlib image layout to RGBA8 instead of
// rejecting any, so it is defined for backends and loaders that only
// accept specific channel layouts.
type ChannelCountError struct {
	Channels int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("texture: unsupported channel count %d", e.Channels)
}

// BackendError tags a failure that originated inside a backend
// implementation. Backend identifies the implementation and Msg
// carries its human-readable description; Err holds the underlying
// backend error when one exists.
type BackendError struct {
	Backend string
	Msg     string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("texture: backend %s: %s", e.Backend, e.Msg)
	}
	return fmt.Sprintf("texture: backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// WrapBackendError tags err with the backend it came from. Returns nil
// if err is nil; an already-tagged error is returned unchanged.
func WrapBackendError(backend string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*BackendError); ok {
		return err
	}
	return &BackendError{Backend: backend, Msg: err.Error(), Err: err}
}
