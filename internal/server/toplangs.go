package server

import (
	"fmt"
	"net/http"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/render/card"
	"github.com/matzehuels/toplangs/pkg/theme"
)

const svgContentType = "image/svg+xml"

func (s *Server) handleTopLangs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cq, err := s.parseQuery(q)
	if err != nil {
		s.writeErrorCard(w, r, err)
		return
	}

	cq.req.Logger = s.logger.With("id", RequestID(r.Context()))
	res, err := s.runner.Execute(r.Context(), cq.req)
	if err != nil {
		s.writeErrorCard(w, r, err)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", cacheControl(cq.cacheSeconds/2, cq.cacheSeconds))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.SVG)
}

// writeErrorCard answers with an error card themed from the request's
// colour parameters. Invalid parameters get the generic headline with the
// validation message as the hint.
func (s *Server) writeErrorCard(w http.ResponseWriter, r *http.Request, err error) {
	message, secondary := errors.UserMessage(err), errors.SecondaryMessage(err)
	if errors.Is(err, errors.ErrCodeInvalidParam) {
		message, secondary = "Something went wrong", errors.UserMessage(err)
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidParam, errors.ErrCodeMissingParam, errors.ErrCodeInvalidUsername, errors.ErrCodeUserNotFound:
		s.logger.Debug("card error", "err", err, "id", RequestID(r.Context()))
	default:
		s.logger.Warn("card error", "err", err, "id", RequestID(r.Context()))
	}

	q := r.URL.Query()
	th := q.Get("theme")
	if th == "" {
		th = s.cfg.Card.Theme
	}
	colors := theme.Resolve(th, theme.Overrides{
		Title:  q.Get("title_color"),
		Text:   q.Get("text_color"),
		Bg:     q.Get("bg_color"),
		Border: q.Get("border_color"),
	})

	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", cacheControl(errorCacheSeconds, errorCacheSeconds))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(card.RenderError(message, secondary, colors)))
}

func cacheControl(maxAge, sMaxAge int) string {
	return fmt.Sprintf("max-age=%d, s-maxage=%d, stale-while-revalidate=%d", maxAge, sMaxAge, staleSeconds)
}
