package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadinfo/backend/core/account"
	"github.com/acadinfo/backend/core/catalog"
)

var nowFunc = time.Now // mockable

const dateFormat = "2006-01-02"

// Ledger appends booking records to authenticated accounts. Records are
// append-only; there is no edit or cancel operation.
type Ledger struct {
	accts   *account.Service
	catalog *catalog.Provider
}

func NewLedger(accts *account.Service, ctl *catalog.Provider) *Ledger {
	return &Ledger{accts: accts, catalog: ctl}
}

// AddAcademyBooking records a registration request for an academy. The
// academy's sport is resolved from the directory; an academy that cannot be
// found in the given state is recorded under the sport "Unknown".
func (l *Ledger) AddAcademyBooking(sess *account.Session, academyName, state string) (account.Booking, error) {
	acct, err := sess.Account()
	if err != nil {
		return account.Booking{}, err
	}

	b := account.Booking{
		ID:     uuid.New().String(),
		Kind:   account.KindAcademy,
		Name:   academyName,
		Sport:  l.catalog.ResolveSport(academyName, state),
		Date:   nowFunc().Format(dateFormat),
		Status: account.StatusPending,
	}
	if _, err = l.accts.AppendBooking(acct.Username, b); err != nil {
		return b, err
	}
	return b, nil
}

// AddCourseBooking enrolls the account in a course. Premium members are
// enrolled outright; everyone else is parked on "Payment Pending".
func (l *Ledger) AddCourseBooking(sess *account.Session, courseID int) (account.Booking, error) {
	acct, err := sess.Account()
	if err != nil {
		return account.Booking{}, err
	}
	course, err := l.catalog.LookupCourse(courseID)
	if err != nil {
		return account.Booking{}, err
	}

	status := account.StatusPaymentPending
	if acct.Premium {
		status = account.StatusEnrolled
	}
	b := account.Booking{
		ID:     uuid.New().String(),
		Kind:   account.KindCourse,
		Name:   course.Title,
		Sport:  course.Sport,
		Date:   nowFunc().Format(dateFormat),
		Status: status,
	}
	if _, err = l.accts.AppendBooking(acct.Username, b); err != nil {
		return b, err
	}
	return b, nil
}

// AddWebinarBooking claims a seat and records a confirmed booking carrying
// the webinar's own schedule and price. The seat is claimed before the
// record is appended, so a sold-out session never produces a booking.
func (l *Ledger) AddWebinarBooking(sess *account.Session, webinarID int) (account.Booking, error) {
	acct, err := sess.Account()
	if err != nil {
		return account.Booking{}, err
	}
	w, err := l.catalog.LookupWebinar(webinarID)
	if err != nil {
		return account.Booking{}, err
	}

	if err = w.RegisterSeat(); err != nil {
		return account.Booking{}, err
	}
	b := account.Booking{
		ID:     uuid.New().String(),
		Kind:   account.KindWebinar,
		Name:   w.Title,
		Date:   w.Date,
		Time:   w.Time,
		Price:  w.Price,
		Status: account.StatusConfirmed,
	}
	if _, err = l.accts.AppendBooking(acct.Username, b); err != nil {
		return b, err
	}
	return b, nil
}

// Bookings lists the account's ledger, oldest first.
func (l *Ledger) Bookings(sess *account.Session) ([]account.Booking, error) {
	acct, err := sess.Account()
	if err != nil {
		return nil, err
	}
	return acct.Bookings, nil
}
