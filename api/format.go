package api

import (
	"net/http"
	"time"

	"github.com/Drolfothesgnir/docfmt/cache"
	"github.com/Drolfothesgnir/docfmt/javadoc"
	"github.com/Drolfothesgnir/docfmt/render"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FormatRequest struct {
	// Comment is the full Javadoc comment, including "/**" and "*/".
	Comment string `json:"comment" binding:"required"`

	// MaxLineLength overrides the configured target width when set.
	MaxLineLength int `json:"max_line_length" binding:"omitempty,min=40,max=200"`

	// Indent is the number of spaces before "/**" on every rendered line.
	Indent int `json:"indent" binding:"omitempty,max=32"`
}

type FormatResponse struct {
	Formatted string `json:"formatted"`

	// Cached is true when the result came from the cache instead of a fresh
	// lex-and-render run.
	Cached bool `json:"cached"`
}

func (s *Service) formatComment(ctx *gin.Context) {
	var req FormatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	opts := s.renderOptions(req)
	key := cache.Key(req.Comment, opts)

	// cache errors are soft: on any problem we just format again
	if entry, err := s.cache.GetFormatted(ctx, key); err == nil {
		ctx.JSON(http.StatusOK, FormatResponse{Formatted: entry.Formatted, Cached: true})
		return
	}

	tokens, err := javadoc.Lex(req.Comment)
	if err != nil {
		// the only lexing failures are missing comment markers, which is a
		// client problem, not ours
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	formatted := render.Render(tokens, opts)

	entry := cache.Entry{Formatted: formatted, CreatedAt: time.Now()}
	if err := s.cache.SaveFormatted(ctx, key, entry, s.config.CacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache formatted result")
	}

	ctx.JSON(http.StatusOK, FormatResponse{Formatted: formatted})
}

// renderOptions resolves the effective render options: request overrides
// first, then the service config, then the render defaults.
func (s *Service) renderOptions(req FormatRequest) render.Options {
	opts := render.Options{
		MaxLineLength: req.MaxLineLength,
		Indent:        req.Indent,
	}
	if opts.MaxLineLength == 0 {
		opts.MaxLineLength = s.config.MaxLineLength
	}
	return opts
}
