package worker

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Runner menjalankan job asinkron (notifikasi WhatsApp, email) di luar jalur
// request/response. Satu consumer mengeksekusi antrian secara FIFO; job yang
// gagal hanya dicatat di log dan tidak menghentikan job berikutnya maupun
// mempengaruhi response request asalnya. Tidak ada retry.
type Runner struct {
	jobs    chan func() error
	wg      sync.WaitGroup
	closeMu sync.Mutex
	closed  bool
}

func NewRunner(buffer int) *Runner {
	if buffer <= 0 {
		buffer = 128
	}
	r := &Runner{jobs: make(chan func() error, buffer)}
	r.wg.Add(1)
	go r.consume()
	return r
}

func (r *Runner) consume() {
	defer r.wg.Done()
	for job := range r.jobs {
		r.run(job)
	}
}

func (r *Runner) run(job func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithField("panic", fmt.Sprintf("%v", rec)).Error("Background task panicked")
		}
	}()
	if err := job(); err != nil {
		logrus.WithError(err).Error("Background task failed")
	}
}

// Enqueue menambahkan job ke antrian. Setelah Close, job dibuang (dicatat).
func (r *Runner) Enqueue(job func() error) {
	r.closeMu.Lock()
	defer r.closeMu.Unlock()
	if r.closed {
		logrus.Warn("Runner sudah ditutup, task dibuang")
		return
	}
	r.jobs <- job
}

// Close menutup antrian dan menunggu job tersisa selesai diproses.
func (r *Runner) Close() {
	r.closeMu.Lock()
	if r.closed {
		r.closeMu.Unlock()
		return
	}
	r.closed = true
	close(r.jobs)
	r.closeMu.Unlock()
	r.wg.Wait()
}
