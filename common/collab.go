package common

// Texture is an opaque drawable handle produced by an ImageLoader.
type Texture any

// ImageLoader resolves a file identifier into a drawable handle.
type ImageLoader interface {
	LoadImage(path string) (Texture, error)
}

// Surface accepts draw commands in screen coordinates.
type Surface interface {
	DrawImage(tex Texture, x, y, w, h float64)
}

// Field is a named value exposed to the debug display.
type Field struct {
	Name  string
	Value any
}
