package catalog

import "sort"

// Provider serves the built-in sports directory: sports, states, academies,
// courses, webinars and the equipment store. Webinar seat counters are
// per-Provider; everything else is shared read-only data.
type Provider struct {
	webinars []*Webinar
}

func NewProvider() *Provider {
	// webinars carry a mutable seat counter; give each Provider its own copies
	ws := make([]*Webinar, 0, len(webinars))
	for _, w := range webinars {
		cp := Webinar{
			ID:          w.ID,
			Title:       w.Title,
			Price:       w.Price,
			Date:        w.Date,
			Time:        w.Time,
			Duration:    w.Duration,
			Instructor:  w.Instructor,
			Description: w.Description,
			Seats:       w.Seats,
			registered:  w.registered,
		}
		ws = append(ws, &cp)
	}
	return &Provider{webinars: ws}
}

func (p *Provider) Sports() []string {
	return append([]string(nil), sports...)
}

func (p *Provider) States() []string {
	names := make([]string, 0, len(states))
	for s := range states {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

func (p *Provider) Cities(state string) ([]string, error) {
	cities, ok := states[state]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), cities...), nil
}

// LookupAcademies returns the academies for a sport in a state. A listed
// sport with no academies in that state yields an empty result, not an error.
func (p *Provider) LookupAcademies(sport, state string) ([]Academy, error) {
	byState, ok := academies[sport]
	if !ok {
		if !p.knownSport(sport) {
			return nil, ErrNotFound
		}
		return []Academy{}, nil
	}
	if _, ok := states[state]; !ok {
		return nil, ErrNotFound
	}
	return append([]Academy{}, byState[state]...), nil
}

// ResolveSport finds which sport an academy in the given state belongs to;
// unknown academies resolve to "Unknown".
func (p *Provider) ResolveSport(academyName, state string) string {
	for sport, byState := range academies {
		for _, a := range byState[state] {
			if a.Name == academyName {
				return sport
			}
		}
	}
	return "Unknown"
}

func (p *Provider) Courses() []*Course {
	return append([]*Course(nil), courses...)
}

func (p *Provider) LookupCourse(id int) (*Course, error) {
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (p *Provider) Webinars() []*Webinar {
	return append([]*Webinar(nil), p.webinars...)
}

func (p *Provider) LookupWebinar(id int) (*Webinar, error) {
	for _, w := range p.webinars {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

func (p *Provider) Equipment() []*Equipment {
	return append([]*Equipment(nil), equipment...)
}

func (p *Provider) LookupEquipment(id int) (*Equipment, error) {
	for _, e := range equipment {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (p *Provider) knownSport(sport string) bool {
	for _, s := range sports {
		if s == sport {
			return true
		}
	}
	return false
}
