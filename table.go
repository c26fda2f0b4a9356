package bindless

// AccessMode declares whether a descriptor index is uniform across an
// entire dispatch or may diverge between invocations.
//
// On the CPU both modes read the same slice, but the mode is semantic:
// GPU hardware requires a non-uniform qualifier when the index varies
// per invocation within one draw, and reading through a plain access
// path with a divergent index is undefined behavior there. Call sites
// declare their intent here so the WGSL backend and the software
// executor stay in agreement about which lookups are divergent.
type AccessMode uint8

const (
	// AccessUniform marks a lookup whose index is identical for every
	// invocation of the dispatch (for example, the per-draw vertex
	// buffer descriptor).
	AccessUniform AccessMode = iota

	// AccessNonUniform marks a lookup whose index may differ between
	// invocations (for example, a per-primitive texture descriptor).
	AccessNonUniform
)

// DescriptorTable holds the process-wide bindless resource tables:
// sampled textures, format-tagged storage images, and raw structured
// buffers, each addressed by a small integer descriptor index.
//
// The host owns the table: it registers resources and guarantees that
// every index reaching the rendering core is valid for the duration of
// the draw or dispatch that reads it. The core never allocates or frees
// entries and performs no bounds checking on lookups — an out-of-range
// index is a host bug and fails loudly.
type DescriptorTable struct {
	textures []*Texture
	images   []*StorageImage
	buffers  [][]byte
}

// NewDescriptorTable creates an empty descriptor table.
func NewDescriptorTable() *DescriptorTable {
	return &DescriptorTable{}
}

// RegisterTexture adds a sampled texture and returns its descriptor index.
func (t *DescriptorTable) RegisterTexture(tex *Texture) uint32 {
	t.textures = append(t.textures, tex)
	return uint32(len(t.textures) - 1)
}

// RegisterImage adds a storage image and returns its descriptor index.
func (t *DescriptorTable) RegisterImage(img *StorageImage) uint32 {
	t.images = append(t.images, img)
	return uint32(len(t.images) - 1)
}

// RegisterBuffer adds a raw structured buffer and returns its descriptor
// index. The table aliases the slice; the host must keep the contents
// valid while draws referencing the descriptor are in flight.
func (t *DescriptorTable) RegisterBuffer(data []byte) uint32 {
	t.buffers = append(t.buffers, data)
	return uint32(len(t.buffers) - 1)
}

// Texture looks up a sampled texture by descriptor index.
func (t *DescriptorTable) Texture(index uint32, _ AccessMode) *Texture {
	return t.textures[index]
}

// Image looks up a storage image by descriptor index.
func (t *DescriptorTable) Image(index uint32, _ AccessMode) *StorageImage {
	return t.images[index]
}

// Buffer looks up a raw buffer by descriptor index.
func (t *DescriptorTable) Buffer(index uint32, _ AccessMode) []byte {
	return t.buffers[index]
}
