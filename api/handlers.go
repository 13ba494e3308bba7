package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/Agere98/orbits"
)

const contentTypeJSON = "application/json; charset=utf-8"

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// bodyResponse describes a catalog body.
type bodyResponse struct {
	Name        string  `json:"name"`
	Mass        float64 `json:"mass"`
	Radius      float64 `json:"radius"`
	Primary     string  `json:"primary,omitempty"`
	OrbitRadius float64 `json:"orbitRadius,omitempty"`
}

// SimpleTransfer handles a transfer between two orbits around the same primary body.
//
//	{"primaryBodyMass": Number, "startingOrbitRadius": Number, "destinationOrbitRadius": Number}
func (s *Server) SimpleTransfer(ctx *gin.Context) {
	var p orbits.SimpleParams
	if err := decode(ctx, &p); err != nil {
		renderError(ctx, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	t, err := p.Transfer()
	s.respond(ctx, "simple", t, err, false)
}

// InterplanetaryTransfer handles a transfer between orbits around two planets of the same
// primary body. The body extends the simple one with
//
//	{"startingPlanetOrbitRadius": Number, "startingPlanetMass": Number,
//	 "destinationPlanetOrbitRadius": Number, "destinationPlanetMass": Number}
func (s *Server) InterplanetaryTransfer(ctx *gin.Context) {
	var p orbits.InterplanetaryParams
	if err := decode(ctx, &p); err != nil {
		renderError(ctx, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	t, err := p.Transfer()
	s.respond(ctx, "interplanetary", t, err, false)
}

// CatalogTransfer handles a transfer between two bodies of the solar system catalog.
// Without an altitude, the orbit of the body itself is used. An optional `phase`, the current
// lead angle in degrees of the destination over the departure, adds the delay until the next
// launch window.
func (s *Server) CatalogTransfer(ctx *gin.Context) {
	from, to := ctx.Query("from"), ctx.Query("to")
	if from == "" || to == "" {
		renderError(ctx, http.StatusBadRequest, "invalid_request", "both `from` and `to` are required")
		return
	}
	fromAltitude, err := optionalFloat(ctx, "fromAltitude")
	if err != nil {
		renderError(ctx, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	toAltitude, err := optionalFloat(ctx, "toAltitude")
	if err != nil {
		renderError(ctx, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	phase, err := optionalFloat(ctx, "phase")
	if err != nil {
		renderError(ctx, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	t, err := catalogTransfer(from, fromAltitude, to, toAltitude)
	if err != nil || phase == nil {
		s.respond(ctx, "catalog", t, err, true)
		return
	}
	s.metrics.RecordTransfer("catalog", "ok")
	render(ctx, http.StatusOK, orbits.NewDetailsAt(t, *phase))
}

func catalogTransfer(from string, fromAltitude *float64, to string, toAltitude *float64) (orbits.Transfer, error) {
	catalog, err := orbits.NewSolarSystem()
	if err != nil {
		return orbits.Transfer{}, err
	}
	start, err := catalog.Orbit(from, fromAltitude)
	if err != nil {
		return orbits.Transfer{}, err
	}
	dest, err := catalog.Orbit(to, toAltitude)
	if err != nil {
		return orbits.Transfer{}, err
	}
	return orbits.NewTransfer(start, dest)
}

// GetBodies lists the bodies of the solar system catalog.
func (s *Server) GetBodies(ctx *gin.Context) {
	catalog, err := orbits.NewSolarSystem()
	if err != nil {
		renderError(ctx, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	bodies := catalog.Bodies()
	rsp := make([]bodyResponse, len(bodies))
	for i, b := range bodies {
		rsp[i] = bodyResponse{Name: b.Name, Mass: b.Mass(), Radius: b.Radius}
		if o := b.Orbit(); o != nil {
			rsp[i].Primary = o.Primary().Name
			rsp[i].OrbitRadius = o.Radius()
		}
	}
	render(ctx, http.StatusOK, rsp)
}

// Health reports that the server is up.
func (s *Server) Health(ctx *gin.Context) {
	render(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respond(ctx *gin.Context, kind string, t orbits.Transfer, err error, details bool) {
	if err != nil {
		code, errKind := classify(err)
		s.metrics.RecordTransfer(kind, errKind)
		s.log.WithField("kind", errKind).WithError(err).Warnf("%s transfer failed", kind)
		renderError(ctx, code, errKind, err.Error())
		return
	}
	s.metrics.RecordTransfer(kind, "ok")
	if details {
		render(ctx, http.StatusOK, orbits.NewDetails(t))
		return
	}
	render(ctx, http.StatusOK, orbits.NewResult(t))
}

// classify returns the HTTP status and the error kind reported to clients.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, orbits.ErrUnknownBody):
		return http.StatusNotFound, "unknown_body"
	case errors.Is(err, orbits.ErrOrbitCycle):
		return http.StatusUnprocessableEntity, "orbit_cycle"
	case errors.Is(err, orbits.ErrIncompatibleOrbits):
		return http.StatusUnprocessableEntity, "incompatible_orbits"
	case errors.Is(err, orbits.ErrInvalidParameter):
		return http.StatusBadRequest, "invalid_parameter"
	case errors.Is(err, orbits.ErrNilPrimaryBody):
		return http.StatusBadRequest, "nil_primary_body"
	case errors.Is(err, orbits.ErrNotConfigured):
		return http.StatusInternalServerError, "not_configured"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func optionalFloat(ctx *gin.Context, key string) (*float64, error) {
	raw, set := ctx.GetQuery(key)
	if !set || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid `%s`: %w", key, err)
	}
	return &v, nil
}

func decode(ctx *gin.Context, v interface{}) error {
	dec := json.NewDecoder(ctx.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

func render(ctx *gin.Context, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: err.Error(), Kind: "internal"})
	}
	ctx.Data(code, contentTypeJSON, data)
}

func renderError(ctx *gin.Context, code int, kind, msg string) {
	render(ctx, code, errorResponse{Error: msg, Kind: kind})
}
