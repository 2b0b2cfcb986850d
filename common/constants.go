package common

// RowHeight is the vertical unit of one height digit in a packed tile map.
const RowHeight = 64

// NoGroundFactor scales the level height into the out-of-bounds height used
// where there is nothing to stand on.
const NoGroundFactor = 4
