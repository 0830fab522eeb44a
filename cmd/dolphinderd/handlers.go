package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dolphinder-social/dolphinder/appview"
)

type GenericError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type GenericStatus struct {
	Daemon string `json:"daemon"`
	Status string `json:"status"`
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Daemon: "dolphinderd", Status: "ok"})
}

func (srv *Server) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), srv.requestTimeout)
}

// readError maps loader failures to responses: decode trouble is a bad
// upstream object, anything else is the ledger being unreachable.
func readError(c echo.Context, err error) error {
	var decodeErr *appview.DecodeError
	if errors.As(err, &decodeErr) {
		return c.JSON(http.StatusBadGateway, GenericError{
			Error:   "MalformedLedgerObject",
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusBadGateway, GenericError{
		Error:   "LedgerUnavailable",
		Message: err.Error(),
	})
}

func notFound(c echo.Context, name string) error {
	return c.JSON(http.StatusNotFound, GenericError{
		Error:   name,
		Message: "not found",
	})
}

// GET /api/profile/:address
func (srv *Server) HandleGetProfile(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	start := time.Now()
	profile, err := srv.view.GetProfileByOwner(ctx, c.Param("address"))
	profileLookupDuration.WithLabelValues(statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return readError(c, err)
	}
	if profile == nil {
		return notFound(c, "ProfileNotFound")
	}
	return c.JSON(http.StatusOK, profile)
}

// resolveProfile is shared by the collection endpoints, which need the
// profile first for its declared counts.
func (srv *Server) resolveProfile(ctx context.Context, c echo.Context) (*appview.Profile, error, bool) {
	profile, err := srv.view.GetProfileByOwner(ctx, c.Param("address"))
	if err != nil {
		return nil, readError(c, err), false
	}
	if profile == nil {
		return nil, notFound(c, "ProfileNotFound"), false
	}
	return profile, nil, true
}

// GET /api/profile/:address/experience
func (srv *Server) HandleGetExperience(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	profile, resp, ok := srv.resolveProfile(ctx, c)
	if !ok {
		return resp
	}

	start := time.Now()
	entries, err := srv.view.GetExperiences(ctx, profile.ID, profile.ExperienceCount)
	collectionLookupDuration.WithLabelValues("experience", statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// GET /api/profile/:address/education
func (srv *Server) HandleGetEducation(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	profile, resp, ok := srv.resolveProfile(ctx, c)
	if !ok {
		return resp
	}

	start := time.Now()
	entries, err := srv.view.GetEducation(ctx, profile.ID, profile.EducationCount)
	collectionLookupDuration.WithLabelValues("education", statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// GET /api/profile/:address/certificates
func (srv *Server) HandleGetCertificates(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	profile, resp, ok := srv.resolveProfile(ctx, c)
	if !ok {
		return resp
	}

	start := time.Now()
	entries, err := srv.view.GetCertificates(ctx, profile.ID, profile.CertificateCount)
	collectionLookupDuration.WithLabelValues("certificates", statusLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// GET /api/post/:id
func (srv *Server) HandleGetPost(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	post, err := srv.view.GetPost(ctx, c.Param("id"))
	if err != nil {
		return readError(c, err)
	}
	if post == nil {
		return notFound(c, "PostNotFound")
	}
	return c.JSON(http.StatusOK, post)
}

// GET /api/post/:id/comments
func (srv *Server) HandleGetComments(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	post, err := srv.view.GetPost(ctx, c.Param("id"))
	if err != nil {
		return readError(c, err)
	}
	if post == nil {
		return notFound(c, "PostNotFound")
	}
	comments, err := srv.view.GetComments(ctx, post.ID, post.CommentCount)
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// GET /api/author/:address/posts
func (srv *Server) HandleListPosts(c echo.Context) error {
	ctx, cancel := srv.requestContext()
	defer cancel()

	posts, err := srv.view.ListPostsByAuthor(ctx, c.Param("address"))
	if err != nil {
		return readError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}
