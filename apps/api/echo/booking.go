package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
	"github.com/acadinfo/backend/core/booking"
)

type bookingApi struct {
	ledger *booking.Ledger
	svc    *account.Service
}

func registerBookingAPI(g *echo.Group, jwt echo.MiddlewareFunc, ledger *booking.Ledger, svc *account.Service) {
	api := bookingApi{ledger: ledger, svc: svc}

	bg := g.Group("/bookings", jwt)
	bg.GET("", api.query)
	bg.POST("/academies", api.bookAcademy)
	bg.POST("/courses", api.bookCourse)
	bg.POST("/webinars", api.bookWebinar)
}

// Handlers

func (api *bookingApi) query(ctx echo.Context) error {
	sess, err := getContextSession(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	bookings, err := api.ledger.Bookings(sess)
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []account.Booking{}
	}
	return ctx.JSON(http.StatusOK, bookings)
}

func (api *bookingApi) bookAcademy(ctx echo.Context) error {
	var data AcademyBookingRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AcademyBookingRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := getContextSession(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	b, err := api.ledger.AddAcademyBooking(sess, data.Academy, data.State)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api *bookingApi) bookCourse(ctx echo.Context) error {
	var data CourseBookingRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseBookingRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := getContextSession(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	b, err := api.ledger.AddCourseBooking(sess, data.CourseID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api *bookingApi) bookWebinar(ctx echo.Context) error {
	var data WebinarBookingRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WebinarBookingRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := getContextSession(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	b, err := api.ledger.AddWebinarBooking(sess, data.WebinarID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b)
}

type (
	AcademyBookingRequest struct {
		Academy string `json:"academy" validate:"required"`
		State   string `json:"state" validate:"required"`
	}

	CourseBookingRequest struct {
		CourseID int `json:"course_id" validate:"required"`
	}

	WebinarBookingRequest struct {
		WebinarID int `json:"webinar_id" validate:"required"`
	}
)

func (ar *AcademyBookingRequest) Validate() error {
	ar.Academy = core.CleanString(ar.Academy)
	ar.State = core.CleanString(ar.State)
	return core.Validate.Struct(ar)
}

func (cr *CourseBookingRequest) Validate() error { return core.Validate.Struct(cr) }

func (wr *WebinarBookingRequest) Validate() error { return core.Validate.Struct(wr) }
