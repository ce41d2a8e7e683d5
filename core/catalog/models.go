package catalog

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("catalog item not found")
	ErrSoldOut  = errors.New("no seats left")
)

type (
	// Academy is a physical training academy, listed per sport and state.
	Academy struct {
		Name        string   `json:"name"`
		Rating      float64  `json:"rating"`
		Coach       string   `json:"coach"`
		Established int      `json:"established"`
		Facilities  []string `json:"facilities"`
		Address     string   `json:"address"`
		Contact     string   `json:"contact"`
		Fees        string   `json:"fees"`
		Timings     string   `json:"timings"`
	}

	// Course is an online course; free for premium members.
	Course struct {
		ID          int      `json:"id"`
		Title       string   `json:"title"`
		Price       int      `json:"price"`
		Duration    string   `json:"duration"`
		Instructor  string   `json:"instructor"`
		Sport       string   `json:"sport"`
		Description string   `json:"description"`
		Modules     []string `json:"modules"`
		Students    int      `json:"students"`
		Rating      float64  `json:"rating"`
	}

	// Webinar is a live online session with a fixed seat count.
	Webinar struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Price       int    `json:"price"`
		Date        string `json:"date"` // freeform schedule text, copied onto bookings as-is
		Time        string `json:"time"`
		Duration    string `json:"duration"`
		Instructor  string `json:"instructor"`
		Description string `json:"description"`
		Seats       int    `json:"seats"`

		mu         sync.Mutex
		registered int
	}

	// Equipment is a store item; browsing only, equipment is not bookable.
	Equipment struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Price       int     `json:"price"`
		Category    string  `json:"category"`
		Discount    int     `json:"discount"`
		Description string  `json:"description"`
		Stock       int     `json:"stock"`
		Rating      float64 `json:"rating"`
	}
)

func (w *Webinar) Registered() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registered
}

func (w *Webinar) SeatsLeft() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Seats - w.registered
}

// RegisterSeat claims one seat, or returns ErrSoldOut when none are left.
// The check and the increment are one atomic step so concurrent bookings
// cannot oversell the session.
func (w *Webinar) RegisterSeat() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.registered >= w.Seats {
		return ErrSoldOut
	}
	w.registered++
	return nil
}
