package stream

import (
	"context"

	"github.com/MasterOfBinary/splitbatch/spliterator"

	"golang.org/x/sync/errgroup"
)

// part is a node in the tree of parts created by splitting. A part that was
// split has a prefix and a remainder, and does not hold any elements itself.
type part[T any] struct {
	elements          []T
	prefix, remainder *part[T]
}

func (p *part[T]) appendElements(elements []T) []T {
	if p.prefix != nil {
		return p.remainder.appendElements(p.prefix.appendElements(elements))
	}
	return append(elements, p.elements...)
}

func (p *part[T]) appendLeaves(leaves [][]T) [][]T {
	if p.prefix != nil {
		return p.remainder.appendLeaves(p.prefix.appendLeaves(leaves))
	}
	return append(leaves, p.elements)
}

type traversal[T any] struct {
	ctx        context.Context
	group      *errgroup.Group
	targetSize int64
	visit      func(p *part[T], element T) error
}

func run[T any](ctx context.Context, s spliterator.Spliterator[T], opts *Options, visit func(p *part[T], element T) error) (*part[T], error) {
	opts = opts.WithDefaults(s.EstimateSize())
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Concurrency)
	t := &traversal[T]{
		ctx:        groupCtx,
		group:      group,
		targetSize: opts.TargetSize,
		visit:      visit,
	}

	root := &part[T]{}
	group.Go(func() error {
		return t.walk(root, s)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return root, nil
}

// walk splits s for as long as it is larger than the target size and
// agrees to split. Prefixes are walked by other goroutines when the
// concurrency limit permits, and in line otherwise.
func (t *traversal[T]) walk(p *part[T], s spliterator.Spliterator[T]) error {
	for s.EstimateSize() > t.targetSize {
		if err := t.ctx.Err(); err != nil {
			return err
		}
		prefix, err := s.TrySplit()
		if err != nil {
			return err
		}
		if prefix == nil {
			break
		}

		p.prefix, p.remainder = &part[T]{}, &part[T]{}
		prefixPart := p.prefix
		if !t.group.TryGo(func() error {
			return t.walk(prefixPart, prefix)
		}) {
			if err := t.walk(prefixPart, prefix); err != nil {
				return err
			}
		}
		p = p.remainder
	}
	return t.traverse(p, s)
}

func (t *traversal[T]) traverse(p *part[T], s spliterator.Spliterator[T]) error {
	for {
		if err := t.ctx.Err(); err != nil {
			return err
		}
		element, ok, err := s.TryAdvance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := t.visit(p, element); err != nil {
			return err
		}
	}
}

func collectElement[T any](p *part[T], element T) error {
	p.elements = append(p.elements, element)
	return nil
}

// Collect returns all elements of s in encounter order, traversing the
// parts of s concurrently. The first error reported by s, or the error of
// ctx, is returned unchanged.
func Collect[T any](ctx context.Context, s spliterator.Spliterator[T], opts *Options) ([]T, error) {
	root, err := run(ctx, s, opts, collectElement[T])
	if err != nil {
		return nil, err
	}
	return root.appendElements(nil), nil
}

// Partitions is like Collect, but keeps the elements of every part that
// was traversed separately. Parts are returned in encounter order and may
// be empty.
func Partitions[T any](ctx context.Context, s spliterator.Spliterator[T], opts *Options) ([][]T, error) {
	root, err := run(ctx, s, opts, collectElement[T])
	if err != nil {
		return nil, err
	}
	return root.appendLeaves(nil), nil
}

// ForEach calls fn for every element of s. Calls for elements of different
// parts happen concurrently, while the elements of a single part are
// visited in order. Traversal stops at the first error returned by s or fn,
// which is then returned.
func ForEach[T any](ctx context.Context, s spliterator.Spliterator[T], fn func(T) error, opts *Options) error {
	_, err := run(ctx, s, opts, func(_ *part[T], element T) error {
		return fn(element)
	})
	return err
}
