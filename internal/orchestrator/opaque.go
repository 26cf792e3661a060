package orchestrator

import (
	"sync"

	"github.com/n2code/recache/internal/asset"
)

// copyJob is a deferred opaque-file copy, queued so FlushCopies can
// run the copy path across a small worker pool (spec.md §5: "An
// implementation may parallelize the opaque-copy path... across
// workers"). Only the physical copy is deferred; merkle_hash is
// already known by the time processOpaque returns, which is all any
// textual dependent needs to rewrite its reference.
type copyJob struct {
	src  string
	dest string
}

// processOpaque implements spec.md §4.5 step 6.
func (o *Orchestrator) processOpaque(a *asset.Asset) (string, error) {
	path := a.LogicalPath
	if _, known := o.state.plainHash[path]; !known {
		h, err := o.plainHashOf(path, a.OriginalPath)
		if err != nil {
			return "", err
		}
		o.state.plainHash[path] = h
	}
	merkle := o.state.plainHash[path]
	dest := outputCacheRelativePath(a, merkle)
	a.OutputPath = dest
	o.copyQueue = append(o.copyQueue, copyJob{src: a.OriginalPath, dest: dest})
	return merkle, nil
}

// flushCopies drains the queued opaque-file copies across up to
// workers concurrent goroutines, returning the first error
// encountered (if any). Called once, after the synchronous DFS over
// the reference graph has completed.
func (o *Orchestrator) flushCopies(workers int) error {
	if len(o.copyQueue) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(o.copyQueue) {
		workers = len(o.copyQueue)
	}

	jobs := make(chan copyJob)
	errs := make(chan error, len(o.copyQueue))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := o.emitter.CopyBinary(j.src, j.dest); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, j := range o.copyQueue {
		jobs <- j
	}
	close(jobs)
	wg.Wait()
	close(errs)

	o.copyQueue = nil

	for err := range errs {
		return err // first error wins; copies are independent so partial completion is acceptable
	}
	return nil
}
