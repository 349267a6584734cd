package server

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"igcompare/core"
	"igcompare/logging"
)

// maxEncodedCharBytes bounds one character after form or JSON encoding
// (a percent-encoded four byte rune).
const maxEncodedCharBytes = 12

// bodySlack covers field names and separators.
const bodySlack = 1024

// CompareRequest carries the two pasted lists. ExcludeOrgs falls back to the
// configured default when absent.
type CompareRequest struct {
	Following   string `form:"following" json:"following"`
	Followers   string `form:"followers" json:"followers"`
	ExcludeOrgs *bool  `form:"exclude_orgs" json:"exclude_orgs"`
}

type indexPage struct {
	Following   string
	Followers   string
	ExcludeOrgs bool
	Report      *core.Report
}

func (s *Server) bindRequest(c *gin.Context) (CompareRequest, error) {
	var req CompareRequest

	limit := s.cfg.Limits.MaxInputChars

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes(limit))

	if err := c.ShouldBind(&req); err != nil {
		return req, fmt.Errorf("invalid request: %w", err)
	}

	lists := []struct {
		listType core.ListType
		text     string
	}{
		{core.Following, req.Following},
		{core.Followers, req.Followers},
	}

	for _, l := range lists {
		if n := utf8.RuneCountInString(l.text); n > limit {
			return req, fmt.Errorf("%s list has %d characters, limit is %d", l.listType, n, limit)
		}
	}

	return req, nil
}

// maxBodyBytes is the largest request body that can still carry two lists
// within the character limit.
func maxBodyBytes(limit int) int64 {
	return int64(limit)*2*maxEncodedCharBytes + bodySlack
}

func (s *Server) excludeOrgs(req CompareRequest) bool {
	if req.ExcludeOrgs == nil {
		return s.cfg.OrgFilter.ExcludeByDefault
	}
	return *req.ExcludeOrgs
}

// report compares the pasted lists and shapes the result for display.
func (s *Server) report(req CompareRequest) core.Report {
	if !s.session.Cached(req.Following, req.Followers) {
		defer logging.LogOperationStart(s.logger, "extract_and_compare")()
	}

	c, cached := s.session.Compare(req.Following, req.Followers)
	observeComparison(c, cached)

	r := core.BuildReport(c, core.ReportOptions{
		Filter:      s.filter,
		ExcludeOrgs: s.excludeOrgs(req),
		Locale:      s.locale,
	})

	s.logComparison(r, cached)

	return r
}

// logComparison logs list sizes only, never the handles themselves.
func (s *Server) logComparison(r core.Report, cached bool) {
	s.logger.Debug().
		Int(core.Following.String(), r.FollowingCount).
		Int(core.Followers.String(), r.FollowersCount).
		Bool("cached", cached).
		Msg("Lists extracted")

	event := s.logger.Info().Bool("exclude_orgs", r.ExcludeOrgs)
	for _, l := range r.Lists() {
		event = event.Int(l.Name, l.Count)
	}
	event.Msg("Comparison done")
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", indexPage{
		ExcludeOrgs: s.cfg.OrgFilter.ExcludeByDefault,
	})
}

func (s *Server) handleIndexSubmit(c *gin.Context) {
	req, err := s.bindRequest(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	r := s.report(req)

	c.HTML(http.StatusOK, "index.html", indexPage{
		Following:   req.Following,
		Followers:   req.Followers,
		ExcludeOrgs: r.ExcludeOrgs,
		Report:      &r,
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	req, err := s.bindRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.report(req))
}

func (s *Server) handleExport(c *gin.Context) {
	req, err := s.bindRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := s.report(req)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", core.ExportFileName))
	c.Status(http.StatusOK)

	// Once headers are out the client owns the download; a failed write is only logged.
	if err := r.WriteCSV(c.Writer); err != nil {
		s.logger.Warn().Err(err).Msg("CSV export interrupted")
		return
	}

	exportsTotal.Inc()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
