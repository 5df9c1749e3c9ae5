package concurrent

import "sync"

// WorkerPool jalanin JobFunc di beberapa goroutine. semua job ditampung di channel ber-buffer jobCount,
// jadi AddJob bisa dipanggil sebelum Start.
//
// pemakaian: AddJob... -> Close -> Start(fn) -> Wait -> CollectResults.
type WorkerPool[T JobI, G any] struct {
	numWorkers int
	jobQueue   chan Job[T]
	results    chan G
	wg         sync.WaitGroup
	nextID     int
}

func NewWorkerPool[T JobI, G any](numWorkers, jobCount int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job[T], jobCount),
		results:    make(chan G, jobCount),
	}
}

func (wp *WorkerPool[T, G]) AddJob(item T) {
	wp.jobQueue <- Job[T]{ID: wp.nextID, JobItem: item}
	wp.nextID++
}

// Close tutup antrian job, worker berhenti setelah antrian habis.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[T, G]) Start(fn JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(fn)
	}
}

func (wp *WorkerPool[T, G]) worker(fn JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- fn(job.JobItem)
	}
}

// Wait tunggu semua worker selesai lalu tutup channel result.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}
