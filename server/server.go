// Package server exposes the runout engine over HTTP.
//
// Every request carries its own parameters and coordinates and is computed
// independently; the server keeps no state between requests.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"honnef.co/go/runout"
	"honnef.co/go/runout/coords"
	"honnef.co/go/runout/export"
	"honnef.co/go/runout/geom"
	"honnef.co/go/runout/render"
)

// Request is the body of a computation request. Parameters that are left
// out keep the values of [runout.DefaultParameters].
type Request struct {
	Parameters     runout.Parameters `json:"parameters"`
	SlopeProfile   string            `json:"slope_profile" binding:"required"`
	FailureSurface string            `json:"failure_surface"`
}

// Response is the JSON answer to a computation request.
type Response struct {
	ID      uuid.UUID      `json:"id"`
	Result  *runout.Result `json:"result"`
	Summary []string       `json:"summary"`
}

type errorResponse struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// Server serves the runout API.
type Server struct {
	engine *runout.Engine
	router *gin.Engine
}

// New returns a server computing with e. A nil engine behaves like a zero
// [runout.Engine].
func New(e *runout.Engine) *Server {
	if e == nil {
		e = &runout.Engine{}
	}
	s := &Server{engine: e, router: gin.New()}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.health)
	api := s.router.Group("/api/v1")
	{
		api.POST("/runout", s.compute)
	}
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("runout: listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) compute(c *gin.Context) {
	id := uuid.New()
	c.Header("X-Request-ID", id.String())

	req := Request{Parameters: runout.DefaultParameters()}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, id, err)
		return
	}
	slope, err := coords.Parse(req.SlopeProfile)
	if err != nil {
		s.fail(c, id, fmt.Errorf("slope_profile: %w", err))
		return
	}
	var failure []geom.Point
	if strings.TrimSpace(req.FailureSurface) != "" {
		failure, err = coords.Parse(req.FailureSurface)
		if err != nil {
			s.fail(c, id, fmt.Errorf("failure_surface: %w", err))
			return
		}
	}
	res, err := s.engine.Compute(req.Parameters, slope, failure)
	if err != nil {
		s.fail(c, id, err)
		return
	}

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, Response{ID: id, Result: res, Summary: res.Summary()})
	case "geojson":
		data, err := export.GeoJSON(res)
		if err != nil {
			s.fail(c, id, err)
			return
		}
		c.Data(http.StatusOK, "application/geo+json", data)
	case "wkt":
		var buf bytes.Buffer
		if err := export.WriteWKT(&buf, res); err != nil {
			s.fail(c, id, err)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	case "wkb":
		var buf bytes.Buffer
		if err := export.WriteWKB(&buf, res); err != nil {
			s.fail(c, id, err)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	case "svg":
		var buf bytes.Buffer
		if err := render.WriteSVG(&buf, res, render.Options{}); err != nil {
			s.fail(c, id, err)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: fmt.Sprintf("unknown format %q", format)})
	}
}

// fail reports err. Bad input is the client's fault; anything else is
// logged and reported as an internal error.
func (s *Server) fail(c *gin.Context, id uuid.UUID, err error) {
	if isInputError(err) {
		c.JSON(http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()})
		return
	}
	log.Printf("runout: request %s: %v", id, err)
	c.JSON(http.StatusInternalServerError, errorResponse{ID: id, Error: "internal error"})
}

func isInputError(err error) bool {
	var (
		cerr    *runout.ConfigError
		perr    *coords.ParseError
		synerr  *json.SyntaxError
		typeerr *json.UnmarshalTypeError
		verrs   validator.ValidationErrors
	)
	return errors.As(err, &cerr) ||
		errors.As(err, &perr) ||
		errors.As(err, &synerr) ||
		errors.As(err, &typeerr) ||
		errors.As(err, &verrs) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
