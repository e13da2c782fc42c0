package ubidi

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Resolution needs a handful of working arrays which live only for the
// duration of one SetParagraph call. To avoid re-allocating them for every
// paragraph we will pool the scratch objects.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		T().Errorf("scratch pool failed to lend: %v", err)
		return &scratch{}
	}
	return o.(*scratch)
}

func releaseScratch(s *scratch) {
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
