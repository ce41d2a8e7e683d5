package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/catalog"
)

type catalogApi struct {
	provider *catalog.Provider
}

// registerCatalogAPI exposes the sports directory; browsing needs no auth.
func registerCatalogAPI(g *echo.Group, provider *catalog.Provider) {
	api := catalogApi{provider: provider}

	cg := g.Group("/catalog")
	cg.GET("/sports", api.sports)
	cg.GET("/states", api.states)
	cg.GET("/states/:state/cities", api.cities)
	cg.GET("/academies", api.academies)
	cg.GET("/courses", api.courses)
	cg.GET("/courses/:id", api.course)
	cg.GET("/webinars", api.webinars)
	cg.GET("/webinars/:id", api.webinar)
	cg.GET("/equipment", api.equipment)
	cg.GET("/equipment/:id", api.equipmentItem)
}

// Handlers

func (api *catalogApi) sports(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.provider.Sports())
}

func (api *catalogApi) states(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.provider.States())
}

func (api *catalogApi) cities(ctx echo.Context) error {
	cities, err := api.provider.Cities(ctx.Param("state"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cities)
}

func (api *catalogApi) academies(ctx echo.Context) error {
	var query AcademyQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to AcademyQuery")
	}
	if err := query.Validate(); err != nil {
		return err
	}

	accs, err := api.provider.LookupAcademies(query.Sport, query.State)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, accs)
}

func (api *catalogApi) courses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.provider.Courses())
}

func (api *catalogApi) course(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	course, err := api.provider.LookupCourse(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *catalogApi) webinars(ctx echo.Context) error {
	ws := api.provider.Webinars()
	resp := make([]WebinarResponse, 0, len(ws))
	for _, w := range ws {
		resp = append(resp, newWebinarResponse(w))
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *catalogApi) webinar(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	w, err := api.provider.LookupWebinar(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newWebinarResponse(w))
}

func (api *catalogApi) equipment(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.provider.Equipment())
}

func (api *catalogApi) equipmentItem(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	item, err := api.provider.LookupEquipment(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, item)
}

type (
	AcademyQuery struct {
		Sport string `query:"sport" validate:"required"`
		State string `query:"state" validate:"required"`
	}

	// WebinarResponse carries the live seat counters alongside the webinar.
	WebinarResponse struct {
		*catalog.Webinar
		Registered int `json:"registered"`
		SeatsLeft  int `json:"seats_left"`
	}
)

func newWebinarResponse(w *catalog.Webinar) WebinarResponse {
	return WebinarResponse{Webinar: w, Registered: w.Registered(), SeatsLeft: w.SeatsLeft()}
}

func (aq *AcademyQuery) Validate() error {
	aq.Sport = core.CleanString(aq.Sport)
	aq.State = core.CleanString(aq.State)
	return core.Validate.Struct(aq)
}
