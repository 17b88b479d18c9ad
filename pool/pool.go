// Package pool implements a fixed-page memory pool: a slab allocator that
// hands out PageSize-byte pages from large contiguous blocks, tracked with a
// per-block occupancy bitmap. It exists to accelerate allocation of the
// variable-length digit buffers backing bigint.Int, avoiding a general-heap
// round trip for the common case.
//
// The pool is not safe for concurrent use: it is process-wide mutable state
// with no internal locking, by design (see bigint's concurrency notes).
// Callers needing concurrent allocation must synchronize externally or avoid
// the pool (the general heap is always a supported fallback).
package pool

import "errors"

// PageSize is the fixed size, in bytes, of every page the pool allocates.
const PageSize = 4096

// pagesPerBlock is the number of pages a single block holds.
const pagesPerBlock = 32

// blockDataSize is the total byte size of a block's data region.
const blockDataSize = PageSize * pagesPerBlock

// bitsPerBitmapByte is the number of occupancy bits packed into one bitmap byte.
const bitsPerBitmapByte = 8

// bitmapBytesPerBlock is the size of a block's occupancy bitmap.
const bitmapBytesPerBlock = pagesPerBlock / bitsPerBitmapByte

var (
	// ErrAllocationTooLarge is returned by Alloc when the requested size
	// exceeds PageSize; such requests are never served by the pool.
	ErrAllocationTooLarge = errors.New("pool: allocation size exceeds page size")

	// ErrNotOwned is returned by Free when ptr was not allocated by this pool.
	ErrNotOwned = errors.New("pool: pointer not owned by this pool")

	// ErrZeroSize is returned by New when size is not positive.
	ErrZeroSize = errors.New("pool: size must be positive")
)

// Stats reports byte-granularity occupancy for a pool or a single block.
type Stats struct {
	Used  int
	Free  int
	Total int
}

// block is one contiguous allocation unit: pagesPerBlock pages of data plus
// the bitmap tracking which pages are occupied.
type block struct {
	data   []byte
	bitmap []byte
	stats  Stats
}

// newBlock allocates and optionally zero-fills one block.
func newBlock(zeroFill bool) *block {
	b := &block{
		data:   make([]byte, blockDataSize),
		bitmap: make([]byte, bitmapBytesPerBlock),
	}
	b.stats = Stats{Used: 0, Free: blockDataSize, Total: blockDataSize}
	_ = zeroFill // make([]byte, n) is always zeroed in Go; kept for parity with the source's explicit fill_with_zero flag
	return b
}

// Pool is a set of fixed-size blocks, each holding pagesPerBlock PageSize
// pages, tracked with a bitmap. Allocations larger than PageSize always fall
// through to the caller (the pool never serves them); the caller is expected
// to fall back to the general heap in that case, exactly as bigint's digit
// buffers do.
type Pool struct {
	blocks   []*block
	zeroFill bool
	stats    Stats
}

// New creates a pool sized to hold at least size bytes, rounded up to a
// whole number of blocks. zeroFill mirrors the source's fill_with_zero flag:
// when true (the recommended setting), every page is guaranteed clean on
// first acquisition, so callers never need to zero a freshly allocated page
// themselves. Go's make([]byte, n) already zero-fills, so zeroFill has no
// runtime effect here beyond documenting the contract.
func New(size int, zeroFill bool) (*Pool, error) {
	if size <= 0 {
		return nil, ErrZeroSize
	}
	blockCount := (size + blockDataSize - 1) / blockDataSize
	p := &Pool{blocks: make([]*block, blockCount), zeroFill: zeroFill}
	for i := range p.blocks {
		p.blocks[i] = newBlock(zeroFill)
	}
	total := blockCount * blockDataSize
	p.stats = Stats{Used: 0, Free: total, Total: total}
	return p, nil
}

// Destroy releases all blocks. The Pool must not be used afterward.
func (p *Pool) Destroy() error {
	p.blocks = nil
	p.stats = Stats{}
	return nil
}

// Stats reports pool-wide occupancy.
func (p *Pool) Stats() Stats {
	return p.stats
}

// BlockStats reports per-block occupancy, in block order.
func (p *Pool) BlockStats() []Stats {
	out := make([]Stats, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.stats
	}
	return out
}
