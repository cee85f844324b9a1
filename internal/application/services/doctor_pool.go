package services

import (
	"math/rand"
	"time"
)

// DoctorPool holds the doctor ids resolved during one run, in the order the
// doctors were processed, and hands them out at random to new patients.
// The assignment only fills a demo foreign key; it carries no clinical meaning.
type DoctorPool struct {
	ids []int64
	rng *rand.Rand
}

// NewDoctorPool creates an empty pool. A zero seed uses the current time.
func NewDoctorPool(seed int64) *DoctorPool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DoctorPool{rng: rand.New(rand.NewSource(seed))}
}

// Add appends a resolved doctor id
func (p *DoctorPool) Add(id int64) {
	p.ids = append(p.ids, id)
}

// Len returns the number of ids in the pool
func (p *DoctorPool) Len() int {
	return len(p.ids)
}

// IDs returns a copy of the pool contents
func (p *DoctorPool) IDs() []int64 {
	out := make([]int64, len(p.ids))
	copy(out, p.ids)
	return out
}

// Pick returns a uniformly random id, or nil when the pool is empty
func (p *DoctorPool) Pick() *int64 {
	if len(p.ids) == 0 {
		return nil
	}
	id := p.ids[p.rng.Intn(len(p.ids))]
	return &id
}
